package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

func TestMessageService_DirectMessage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	staff := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	trainerUser, _ := env.createTrainerAccount(t, "Becker")

	msg, err := env.message.Create(trainerUser, &dto.CreateMessageRequest{
		RecipientID: &staff.ID,
		Subject:     "Invoice question",
		Content:     "Which cost center applies?",
	})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)

	// The recipient opening it marks it read.
	opened, err := env.message.Get(staff, msg.ID)
	require.NoError(t, err)
	assert.True(t, opened.IsRead)

	count, err := env.message.UnreadCount(staff)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMessageService_BroadcastVisibleToStaffOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	staff := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	trainerUser, _ := env.createTrainerAccount(t, "Becker")
	otherTrainer, _ := env.createTrainerAccount(t, "Lang")

	// No recipient: an error report addressed to all staff.
	msg, err := env.message.Create(trainerUser, &dto.CreateMessageRequest{
		MessageType:  "error_report",
		Subject:      "Page broken",
		Content:      "The trainings list does not load.",
		PageURL:      "/trainings",
		ErrorDetails: "500 on GET /api/v1/trainings",
	})
	require.NoError(t, err)

	_, err = env.message.Get(staff, msg.ID)
	assert.NoError(t, err, "staff can open broadcasts")

	_, err = env.message.Get(trainerUser, msg.ID)
	assert.NoError(t, err, "the sender can always open their message")

	_, err = env.message.Get(otherTrainer, msg.ID)
	assert.Error(t, err, "unrelated trainers cannot open broadcasts")
}

func TestMessageService_UnknownRecipient(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	sender := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	missing := "no-such-user"

	_, err := env.message.Create(sender, &dto.CreateMessageRequest{
		RecipientID: &missing,
		Subject:     "Hi",
		Content:     "there",
	})
	assert.Error(t, err)
}

func TestMessageService_ReplyThreading(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	staff := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	trainerUser, _ := env.createTrainerAccount(t, "Becker")

	root, err := env.message.Create(trainerUser, &dto.CreateMessageRequest{
		RecipientID: &staff.ID,
		Subject:     "Question",
		Content:     "?",
	})
	require.NoError(t, err)

	reply, err := env.message.Create(staff, &dto.CreateMessageRequest{
		RecipientID: &trainerUser.ID,
		ParentID:    &root.ID,
		Subject:     "Re: Question",
		Content:     "!",
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	opened, err := env.message.Get(trainerUser, root.ID)
	require.NoError(t, err)
	require.Len(t, opened.Replies, 1)
	assert.Equal(t, reply.ID, opened.Replies[0].ID)
}

func TestMessageService_StatusChangeIsStaffOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	staff := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	trainerUser, _ := env.createTrainerAccount(t, "Becker")

	msg, err := env.message.Create(trainerUser, &dto.CreateMessageRequest{
		Subject: "Bug",
		Content: "It broke.",
	})
	require.NoError(t, err)

	solved := "solved"
	_, err = env.message.Update(trainerUser, msg.ID, &dto.UpdateMessageRequest{Status: &solved})
	assert.Error(t, err, "only staff may resolve messages")

	updated, err := env.message.Update(staff, msg.ID, &dto.UpdateMessageRequest{Status: &solved})
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusSolved, updated.Status)
}

func TestMessageService_DeleteBySenderOrStaff(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	staff := env.createStaffUser(t, "alice", models.UserRoleBackoffice)
	trainerUser, _ := env.createTrainerAccount(t, "Becker")
	otherTrainer, _ := env.createTrainerAccount(t, "Lang")

	msg, err := env.message.Create(trainerUser, &dto.CreateMessageRequest{
		RecipientID: &staff.ID,
		Subject:     "Temp",
		Content:     "x",
	})
	require.NoError(t, err)

	err = env.message.Delete(otherTrainer, msg.ID)
	assert.Error(t, err)

	require.NoError(t, env.message.Delete(trainerUser, msg.ID))
	_, err = env.message.Get(staff, msg.ID)
	assert.Error(t, err)
}
