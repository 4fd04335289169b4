package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	t.Parallel()

	// The happy path from lead to invoiced.
	path := []TrainingStatus{
		TrainingStatusLead,
		TrainingStatusAppointmentScheduled,
		TrainingStatusInitialContact,
		TrainingStatusProposalSent,
		TrainingStatusTrainerOutreach,
		TrainingStatusTrainerConfirmed,
		TrainingStatusPlanning,
		TrainingStatusDelivered,
		TrainingStatusInvoiced,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]),
			"expected %s -> %s to be allowed", path[i], path[i+1])
	}
}

func TestCanTransition_Backward(t *testing.T) {
	t.Parallel()

	backward := map[TrainingStatus]TrainingStatus{
		TrainingStatusAppointmentScheduled: TrainingStatusLead,
		TrainingStatusInitialContact:       TrainingStatusLead,
		TrainingStatusProposalSent:         TrainingStatusLead,
		TrainingStatusTrainerOutreach:      TrainingStatusProposalSent,
		TrainingStatusTrainerConfirmed:     TrainingStatusTrainerOutreach,
		TrainingStatusPlanning:             TrainingStatusTrainerConfirmed,
		TrainingStatusDelivered:            TrainingStatusPlanning,
		TrainingStatusInvoiced:             TrainingStatusDelivered,
	}

	for from, to := range backward {
		assert.True(t, CanTransition(from, to),
			"expected %s -> %s to be allowed", from, to)
	}
}

func TestCanTransition_Skipping(t *testing.T) {
	t.Parallel()

	// Stage skipping is rejected in both directions.
	forbidden := [][2]TrainingStatus{
		{TrainingStatusLead, TrainingStatusTrainerOutreach},
		{TrainingStatusLead, TrainingStatusInvoiced},
		{TrainingStatusProposalSent, TrainingStatusTrainerConfirmed},
		{TrainingStatusTrainerOutreach, TrainingStatusPlanning},
		{TrainingStatusInvoiced, TrainingStatusLead},
		{TrainingStatusInvoiced, TrainingStatusPlanning},
		{TrainingStatusDelivered, TrainingStatusTrainerConfirmed},
	}

	for _, pair := range forbidden {
		assert.False(t, CanTransition(pair[0], pair[1]),
			"expected %s -> %s to be rejected", pair[0], pair[1])
	}
}

func TestCanTransition_LeadHasThreeTargets(t *testing.T) {
	t.Parallel()

	// Lead may jump directly to appointment, contact or proposal,
	// matching how deals actually arrive.
	assert.True(t, CanTransition(TrainingStatusLead, TrainingStatusAppointmentScheduled))
	assert.True(t, CanTransition(TrainingStatusLead, TrainingStatusInitialContact))
	assert.True(t, CanTransition(TrainingStatusLead, TrainingStatusProposalSent))
}

func TestCanTransition_SameStatusIsNoop(t *testing.T) {
	t.Parallel()

	for status := range AllowedStatusTransitions {
		assert.True(t, CanTransition(status, status),
			"expected %s -> %s (no-op) to be allowed", status, status)
	}
}

func TestValidTrainingStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidTrainingStatus(TrainingStatusLead))
	assert.True(t, ValidTrainingStatus(TrainingStatusInvoiced))
	assert.False(t, ValidTrainingStatus(TrainingStatus("cancelled")))
	assert.False(t, ValidTrainingStatus(TrainingStatus("")))
}

func TestUserRoleIsStaff(t *testing.T) {
	t.Parallel()

	assert.True(t, UserRoleAdmin.IsStaff())
	assert.True(t, UserRoleBackoffice.IsStaff())
	assert.False(t, UserRoleTrainer.IsStaff())
}
