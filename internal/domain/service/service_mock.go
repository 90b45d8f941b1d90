package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slack-schedule-collector/mocks"
	"github.com/slack-schedule-collector/pkg/logger"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockScheduleRepo  *mocks.MockScheduleRepo
	mockTagRepo       *mocks.MockTagRepo
	mockWorkspaceRepo *mocks.MockWorkspaceRepo
	mockTombstoneRepo *mocks.MockTombstoneRepo
	mockSource        *mocks.MockMessageSource
	mockNotifier      *mocks.MockNotifier
	mockOpener        *mocks.MockScheduleOpener
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	tagRepo := mocks.NewMockTagRepo(ctrl)
	dm.EXPECT().Tag().Return(tagRepo).AnyTimes()

	workspaceRepo := mocks.NewMockWorkspaceRepo(ctrl)
	dm.EXPECT().Workspace().Return(workspaceRepo).AnyTimes()

	tombstoneRepo := mocks.NewMockTombstoneRepo(ctrl)
	dm.EXPECT().Tombstone().Return(tombstoneRepo).AnyTimes()

	source := mocks.NewMockMessageSource(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	opener := mocks.NewMockScheduleOpener(ctrl)

	m = allMocks{
		mockDataManager:   dm,
		mockScheduleRepo:  scheduleRepo,
		mockTagRepo:       tagRepo,
		mockWorkspaceRepo: workspaceRepo,
		mockTombstoneRepo: tombstoneRepo,
		mockSource:        source,
		mockNotifier:      notifier,
		mockOpener:        opener,
	}

	// validate service creation
	syncService := newSync(dm, source, testLogger())
	require.NotNil(t, syncService)

	return
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "disabled", Format: "console", Output: "stdout"})
}
