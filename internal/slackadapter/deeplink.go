package slackadapter

import "fmt"

// DeepLink builds the slack:// link back to a message. The team parameter is
// omitted when no team id is configured.
func DeepLink(teamID, channelID, messageTS string) string {
	if teamID == "" {
		return fmt.Sprintf("slack://channel?id=%s&message=%s", channelID, messageTS)
	}
	return fmt.Sprintf("slack://channel?team=%s&id=%s&message=%s", teamID, channelID, messageTS)
}
