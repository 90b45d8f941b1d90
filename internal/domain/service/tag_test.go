package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slack-schedule-collector/internal/domain/entity"
)

func newTagForTest(m allMocks) *tagService {
	return newTag(m.mockDataManager, testLogger())
}

func TestTagCreate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTagForTest(m)

	tag := &entity.Tag{Name: "work", Color: "#4A90D9"}
	m.mockTagRepo.EXPECT().Create(tag).Return(nil)

	require.NoError(t, s.Create(context.Background(), tag))
	assert.NotEmpty(t, tag.ID, "missing id gets generated")
}

func TestTagCreate_RequiresName(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTagForTest(m)

	err := s.Create(context.Background(), &entity.Tag{Color: "#4A90D9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestTagUpdate_NotFound(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTagForTest(m)

	m.mockTagRepo.EXPECT().GetByID("nope").Return(nil, nil)

	err := s.Update(context.Background(), &entity.Tag{ID: "nope", Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTagDelete(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTagForTest(m)

	m.mockTagRepo.EXPECT().Delete("tag-1").Return(nil)

	require.NoError(t, s.Delete(context.Background(), "tag-1"))
}
