package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMobile(t *testing.T) {
	valid := []string{"13800138000", "19999999999", "13000000000"}
	invalid := []string{"", "12345678901", "1380013800", "138001380000", "23800138000", "1380013800x", " 13800138000"}

	for _, s := range valid {
		assert.True(t, IsMobile(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsMobile(s), s)
	}
}

func TestIsTimeSlot(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	invalid := []string{"", "24:00", "9:30", "09:3", "09:60", "0930", "09:30 ", "ab:cd"}

	for _, s := range valid {
		assert.True(t, IsTimeSlot(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsTimeSlot(s), s)
	}
}

func TestValidateVar(t *testing.T) {
	v := NewValidator()

	t.Run("Notblank", func(t *testing.T) {
		assert.NoError(t, v.ValidateVar("Dr. A", "notblank"))

		err := v.ValidateVar("  ", "notblank")
		require.Error(t, err)
		fe, ok := FirstFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "notblank", fe.Tag())
	})

	t.Run("First Failing Tag Reported", func(t *testing.T) {
		err := v.ValidateVar("", "notblank,timeslot")
		fe, ok := FirstFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "notblank", fe.Tag())

		err = v.ValidateVar("25:00", "notblank,timeslot")
		fe, ok = FirstFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "timeslot", fe.Tag())
	})

	t.Run("Numeric Ranges", func(t *testing.T) {
		assert.NoError(t, v.ValidateVar(1, "min=1,max=18"))
		assert.NoError(t, v.ValidateVar(18, "min=1,max=18"))
		assert.Error(t, v.ValidateVar(0, "min=1,max=18"))
		assert.Error(t, v.ValidateVar(19, "min=1,max=18"))
		assert.Error(t, v.ValidateVar(0, "gt=0"))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		_, ok := FirstFieldError(assert.AnError)
		assert.False(t, ok)
	})
}

type appointmentForm struct {
	PatientName string `json:"patient_name" validate:"notblank"`
	Mobile      string `json:"patient_mobile" validate:"mobile"`
	TimeSlot    string `json:"time_slot" validate:"notblank,timeslot"`
	DoctorID    int    `json:"doctor_id" validate:"gt=0"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&appointmentForm{PatientName: " ", Mobile: "123", TimeSlot: "9:30", DoctorID: 0})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"patient_name":   "patient_name cannot be blank",
		"patient_mobile": "patient_mobile must be an 11-digit mobile number starting with 13-19",
		"time_slot":      "time_slot must be a time in HH:mm format",
		"doctor_id":      "doctor_id must be greater than 0",
	}, errs)

	assert.NoError(t, v.Validate(&appointmentForm{PatientName: "Alex", Mobile: "13800138000", TimeSlot: "09:30", DoctorID: 1}))
}
