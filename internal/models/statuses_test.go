package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	valid := []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReviewed,
		ApplicationStatusInterview,
		ApplicationStatusOffered,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, ApplicationStatus("pending").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatusTransitions(t *testing.T) {
	// Forward movement through the pipeline.
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusReviewed))
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusInterview))
	assert.True(t, ApplicationStatusReviewed.CanTransitionTo(ApplicationStatusOffered))
	assert.True(t, ApplicationStatusOffered.CanTransitionTo(ApplicationStatusAccepted))

	// Rejection is allowed from any non-terminal stage.
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusRejected))
	assert.True(t, ApplicationStatusOffered.CanTransitionTo(ApplicationStatusRejected))

	// No backwards movement.
	assert.False(t, ApplicationStatusReviewed.CanTransitionTo(ApplicationStatusApplied))
	assert.False(t, ApplicationStatusOffered.CanTransitionTo(ApplicationStatusInterview))

	// Terminal statuses are frozen.
	assert.False(t, ApplicationStatusAccepted.CanTransitionTo(ApplicationStatusRejected))
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusApplied))
	assert.True(t, ApplicationStatusAccepted.Terminal())
	assert.True(t, ApplicationStatusRejected.Terminal())
	assert.False(t, ApplicationStatusInterview.Terminal())

	// Unknown targets are refused.
	assert.False(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatus("archived")))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, UserRoleJobSeeker.Valid())
	assert.True(t, UserRoleEmployer.Valid())
	assert.True(t, UserRoleAdmin.Valid())
	assert.False(t, UserRole("moderator").Valid())

	assert.True(t, JobTypeFullTime.Valid())
	assert.True(t, JobTypeFreelance.Valid())
	assert.False(t, JobType("gig").Valid())

	assert.True(t, WorkModeRemote.Valid())
	assert.False(t, WorkMode("office").Valid())

	assert.True(t, AlertFrequencyInstant.Valid())
	assert.True(t, AlertFrequencyWeekly.Valid())
	assert.False(t, AlertFrequency("hourly").Valid())
}
