package usecase

import (
	"context"
	"testing"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessionalDirectory(t *testing.T) {
	ctx := context.Background()
	log, hook := test.NewNullLogger()
	directory := NewProfessionalDirectory(log, repository.NewProfessionalRepository())

	gp, err := entity.NewGeneralPractitioner(1, "Dr. Sarah Johnson", 8, "Community General Practice", true)
	require.NoError(t, err)
	ped, err := entity.NewPediatrician(3, "Dr. Emily Rodriguez", 6, "Pediatric Respiratory Medicine", 12)
	require.NoError(t, err)

	t.Run("Register", func(t *testing.T) {
		require.NoError(t, directory.Register(ctx, gp))
		require.NoError(t, directory.Register(ctx, ped))

		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
		assert.Equal(t, []*entity.HealthProfessional{gp, ped}, directory.List(ctx))
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		dup, err := entity.NewPediatrician(1, "Dr. David Kim", 4, "Pediatric Gastroenterology", 10)
		require.NoError(t, err)

		assert.ErrorIs(t, directory.Register(ctx, dup), ErrProfessionalExists)
		assert.Len(t, directory.List(ctx), 2)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.ErrorIs(t, directory.Register(ctx, nil), entity.ErrMissingReference)
	})

	t.Run("Get", func(t *testing.T) {
		found, err := directory.Get(ctx, 3)
		require.NoError(t, err)
		assert.Same(t, ped, found)

		_, err = directory.Get(ctx, 42)
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}
