package service

import (
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/pkg/logger"
)

type Instance struct {
	Schedule  *scheduleService
	Sync      *syncService
	Notifier  *notifierService
	Workspace *workspaceService
	Tag       *tagService
}

func NewInstance(dm contract.DataManager, source contract.MessageSource, notifier contract.Notifier, opener contract.ScheduleOpener, log *logger.Logger) *Instance {
	notifierService := newNotifier(dm, notifier, opener, log)

	scheduleService := newSchedule(dm, notifier, log)
	scheduleService.SetNotifierService(notifierService)

	return &Instance{
		Schedule:  scheduleService,
		Sync:      newSync(dm, source, log),
		Notifier:  notifierService,
		Workspace: newWorkspace(dm, source, log),
		Tag:       newTag(dm, log),
	}
}
