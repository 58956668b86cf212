package checklist

import (
	"testing"

	"repair_desk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Defaults(t *testing.T) {
	in := NewState(entities.DiagnosticModeIncoming)
	for _, id := range entities.AllChecks {
		want := id != entities.CheckGlassBroken && id != entities.CheckFrameDetached && id != entities.CheckPowerOn
		assert.Equal(t, want, in.Flags[id], "incoming %s", id)
	}

	exit := NewState(entities.DiagnosticModeExit)
	for _, id := range entities.AllChecks {
		assert.False(t, exit.Flags[id], "exit %s", id)
	}
	assert.Len(t, entities.AllChecks, 27)
}

func TestToggle_PowerCascadesWithinMode(t *testing.T) {
	c := New()
	_, err := c.Toggle(entities.DiagnosticModeIncoming, entities.CheckPowerOn)
	require.NoError(t, err)
	for _, id := range entities.AllChecks {
		assert.True(t, c.Incoming.Flags[id], "power on restores %s", id)
	}

	exitBefore := c.Exit.Flags.clone()
	changed, err := c.Toggle(entities.DiagnosticModeIncoming, entities.CheckPowerOn)
	require.NoError(t, err)
	assert.True(t, changed)
	for _, id := range entities.AllChecks {
		assert.False(t, c.Incoming.Flags[id], "power off clears %s", id)
	}
	assert.Equal(t, exitBefore, c.Exit.Flags)
}

func TestToggle_DisabledWhilePoweredOff(t *testing.T) {
	s := NewState(entities.DiagnosticModeIncoming)
	require.False(t, s.PoweredOn())
	assert.True(t, s.InteractionDisabled(entities.CheckWifi))
	assert.False(t, s.InteractionDisabled(entities.CheckPowerOn))

	next, err := Toggle(s, entities.CheckWifi)
	require.NoError(t, err)
	assert.Equal(t, s.Flags, next.Flags)
	assert.True(t, next.Flags[entities.CheckWifi], "stored value is retained")
}

func TestToggle_FlipsSingleCheckWhenPoweredOn(t *testing.T) {
	s, err := Toggle(NewState(entities.DiagnosticModeExit), entities.CheckPowerOn)
	require.NoError(t, err)

	next, err := Toggle(s, entities.CheckNFC)
	require.NoError(t, err)
	assert.False(t, next.Flags[entities.CheckNFC])
	assert.True(t, s.Flags[entities.CheckNFC], "transition does not mutate its input")
	for _, id := range entities.AllChecks {
		if id != entities.CheckNFC {
			assert.Equal(t, s.Flags[id], next.Flags[id], id)
		}
	}
}

func TestToggle_UnknownInputs(t *testing.T) {
	c := New()
	_, err := c.Toggle(entities.DiagnosticModeIncoming, "teleporter")
	assert.ErrorIs(t, err, ErrUnknownCheck)
	_, err = c.Toggle("repair", entities.CheckWifi)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestHydrateAndRemote_PerModeFieldNames(t *testing.T) {
	remote := map[string]bool{"powerOn": true, "faceId": true, "faceID": false, "wirelessCharging": true, "mystery": true}

	in, err := Hydrate(entities.DiagnosticModeIncoming, remote)
	require.NoError(t, err)
	assert.True(t, in.Flags[entities.CheckFaceID])
	assert.True(t, in.Flags[entities.CheckWirelessCharging])
	assert.False(t, in.Flags[entities.CheckWifi], "missing field defaults to false")

	exit, err := Hydrate(entities.DiagnosticModeExit, map[string]bool{"faceID": true, "wirelessCharger": true})
	require.NoError(t, err)
	assert.True(t, exit.Flags[entities.CheckFaceID])
	assert.True(t, exit.Flags[entities.CheckWirelessCharging])

	out := exit.Remote()
	assert.Len(t, out, 27)
	assert.True(t, out["faceID"])
	assert.True(t, out["wirelessCharger"])
	_, hasIncomingSpelling := out["faceId"]
	assert.False(t, hasIncomingSpelling)
}

func TestChecklist_HydrateOverwritesOneMode(t *testing.T) {
	c := New()
	require.NoError(t, c.Hydrate(entities.DiagnosticModeExit, map[string]bool{"powerOn": true, "gps": true}))
	assert.True(t, c.Exit.Flags[entities.CheckGPS])
	assert.False(t, c.Exit.Flags[entities.CheckWifi])
	assert.True(t, c.Incoming.Flags[entities.CheckWifi])
	assert.ErrorIs(t, c.Hydrate("other", nil), ErrUnknownMode)
}
