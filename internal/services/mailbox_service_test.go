package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

// withPlatformMailbox assigns a platform address to the user.
func (e *testEnv) withPlatformMailbox(t *testing.T, user *models.User, address string) {
	t.Helper()
	user.PlatformEmail = &address
	require.NoError(t, e.db.Save(user).Error)
}

func TestMailboxService_RequiresPlatformMailbox(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")

	_, err := env.mailbox.Send(user, &dto.SendEmailRequest{
		To:      []string{"someone@example.com"},
		Subject: "Hi",
	})
	assert.Error(t, err, "sending without a provisioned mailbox must fail")

	_, _, err = env.mailbox.ListFolder(user, models.MailFolderInbox, 10, 0)
	assert.Error(t, err)
}

func TestMailboxService_SendExternal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")
	env.withPlatformMailbox(t, user, "becker@trainer.example.com")

	sent, err := env.mailbox.Send(user, &dto.SendEmailRequest{
		To:       []string{"customer@example.com"},
		Subject:  "Agenda",
		BodyText: "Attached the agenda for Monday.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MailFolderSent, sent.Folder)
	assert.Equal(t, "outbound", sent.Direction)
	assert.Equal(t, "becker@trainer.example.com", sent.FromAddress)
	assert.True(t, sent.IsRead)
	assert.False(t, sent.IsDraft)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, sent.MessageID, sent.ThreadID, "a fresh email starts its own thread")

	mails := env.provider.sentTo("customer@example.com")
	require.Len(t, mails, 1)
	assert.Equal(t, "Agenda", mails[0].Subject)

	emails, total, err := env.mailbox.ListFolder(user, models.MailFolderSent, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, emails, 1)
}

func TestMailboxService_SendToPlatformAddressDeliversInbox(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	sender, _ := env.createTrainerAccount(t, "Becker")
	recipient, _ := env.createTrainerAccount(t, "Lang")
	env.withPlatformMailbox(t, sender, "becker@trainer.example.com")
	env.withPlatformMailbox(t, recipient, "lang@trainer.example.com")

	_, err := env.mailbox.Send(sender, &dto.SendEmailRequest{
		To:       []string{"lang@trainer.example.com"},
		Subject:  "Handover",
		BodyText: "Can you take the Tuesday slot?",
	})
	require.NoError(t, err)

	// Platform-internal delivery creates an inbox row, no SMTP.
	assert.Zero(t, env.provider.count())

	inbox, total, err := env.mailbox.ListFolder(recipient, models.MailFolderInbox, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, inbox, 1)
	assert.Equal(t, "inbound", inbox[0].Direction)
	assert.Equal(t, "becker@trainer.example.com", inbox[0].FromAddress)
	assert.False(t, inbox[0].IsRead)

	count, err := env.mailbox.UnreadCount(recipient)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMailboxService_ReplyJoinsThread(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	sender, _ := env.createTrainerAccount(t, "Becker")
	recipient, _ := env.createTrainerAccount(t, "Lang")
	env.withPlatformMailbox(t, sender, "becker@trainer.example.com")
	env.withPlatformMailbox(t, recipient, "lang@trainer.example.com")

	first, err := env.mailbox.Send(sender, &dto.SendEmailRequest{
		To:       []string{"lang@trainer.example.com"},
		Subject:  "Handover",
		BodyText: "Can you take the Tuesday slot?",
	})
	require.NoError(t, err)

	inbox, _, err := env.mailbox.ListFolder(recipient, models.MailFolderInbox, 10, 0)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	reply, err := env.mailbox.Send(recipient, &dto.SendEmailRequest{
		To:        []string{"becker@trainer.example.com"},
		Subject:   "Re: Handover",
		BodyText:  "Yes, works for me.",
		InReplyTo: inbox[0].MessageID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ThreadID, reply.ThreadID, "reply stays in the original thread")

	thread, err := env.mailbox.Thread(recipient, reply.ThreadID)
	require.NoError(t, err)
	assert.Len(t, thread, 2, "recipient sees the inbound mail and the own reply")
}

func TestMailboxService_DraftLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")
	env.withPlatformMailbox(t, user, "becker@trainer.example.com")

	draft, err := env.mailbox.Send(user, &dto.SendEmailRequest{
		Subject:     "WIP",
		BodyText:    "first thoughts",
		SaveAsDraft: true,
	})
	require.NoError(t, err)
	assert.True(t, draft.IsDraft)
	assert.Equal(t, models.MailFolderDrafts, draft.Folder)

	newBody := "final version"
	draft, err = env.mailbox.UpdateDraft(user, draft.ID, &dto.UpdateEmailRequest{
		BodyText: &newBody,
	})
	require.NoError(t, err)
	assert.Equal(t, "final version", draft.BodyText)

	sent, err := env.mailbox.Send(user, &dto.SendEmailRequest{
		To:       []string{"customer@example.com"},
		Subject:  "Done",
		BodyText: draft.BodyText,
		DraftID:  draft.ID,
	})
	require.NoError(t, err)
	assert.False(t, sent.IsDraft)
	assert.Equal(t, models.MailFolderSent, sent.Folder)
	assert.Equal(t, draft.ID, sent.ID, "sending a draft reuses the row")

	// Drafts folder is empty again.
	_, total, err := env.mailbox.ListFolder(user, models.MailFolderDrafts, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMailboxService_SendWithoutRecipients(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")
	env.withPlatformMailbox(t, user, "becker@trainer.example.com")

	_, err := env.mailbox.Send(user, &dto.SendEmailRequest{Subject: "empty"})
	assert.Error(t, err, "a real send needs at least one recipient")
}

func TestMailboxService_DeleteTrashThenHard(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, _ := env.createTrainerAccount(t, "Becker")
	env.withPlatformMailbox(t, user, "becker@trainer.example.com")

	sent, err := env.mailbox.Send(user, &dto.SendEmailRequest{
		To:      []string{"customer@example.com"},
		Subject: "Bye",
	})
	require.NoError(t, err)

	require.NoError(t, env.mailbox.Delete(user, sent.ID))
	trashed, err := env.mailbox.Get(user, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MailFolderTrash, trashed.Folder)

	require.NoError(t, env.mailbox.Delete(user, sent.ID))
	_, err = env.mailbox.Get(user, sent.ID)
	assert.Error(t, err, "second delete removes the email for good")
}

func TestMailboxService_OwnershipIsEnforced(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owner, _ := env.createTrainerAccount(t, "Becker")
	intruder, _ := env.createTrainerAccount(t, "Lang")
	env.withPlatformMailbox(t, owner, "becker@trainer.example.com")
	env.withPlatformMailbox(t, intruder, "lang2@trainer.example.com")

	sent, err := env.mailbox.Send(owner, &dto.SendEmailRequest{
		To:      []string{"customer@example.com"},
		Subject: "Private",
	})
	require.NoError(t, err)

	_, err = env.mailbox.Get(intruder, sent.ID)
	assert.Error(t, err, "emails are only visible to their owner")
}
