package checklist

import (
	"fmt"

	"repair_desk/internal/domain/entities"
)

// Remote field names per mode. The two schemas are kept apart on purpose: the
// repository spells face_id and wireless_charging differently in the exit record.
var (
	incomingFields = map[entities.CheckID]string{
		entities.CheckPowerOn:            "powerOn",
		entities.CheckTouchscreen:        "touchscreen",
		entities.CheckDisplay:            "display",
		entities.CheckFrontCamera:        "frontCamera",
		entities.CheckRearCamera:         "rearCamera",
		entities.CheckEarpiece:           "earpiece",
		entities.CheckLoudspeaker:        "loudspeaker",
		entities.CheckMicrophone:         "microphone",
		entities.CheckWifi:               "wifi",
		entities.CheckBluetooth:          "bluetooth",
		entities.CheckCellular:           "cellular",
		entities.CheckSimReader:          "simReader",
		entities.CheckChargingPort:       "chargingPort",
		entities.CheckWirelessCharging:   "wirelessCharging",
		entities.CheckBattery:            "battery",
		entities.CheckSideButtons:        "sideButtons",
		entities.CheckVibration:          "vibration",
		entities.CheckProximitySensor:    "proximitySensor",
		entities.CheckAmbientLightSensor: "ambientLightSensor",
		entities.CheckFaceID:             "faceId",
		entities.CheckFingerprint:        "fingerprint",
		entities.CheckNFC:                "nfc",
		entities.CheckGPS:                "gps",
		entities.CheckHeadphoneJack:      "headphoneJack",
		entities.CheckFlashlight:         "flashlight",
		entities.CheckGlassBroken:        "glassBroken",
		entities.CheckFrameDetached:      "frameDetached",
	}

	exitFields = map[entities.CheckID]string{
		entities.CheckPowerOn:            "powerOn",
		entities.CheckTouchscreen:        "touchscreen",
		entities.CheckDisplay:            "display",
		entities.CheckFrontCamera:        "frontCamera",
		entities.CheckRearCamera:         "rearCamera",
		entities.CheckEarpiece:           "earpiece",
		entities.CheckLoudspeaker:        "loudspeaker",
		entities.CheckMicrophone:         "microphone",
		entities.CheckWifi:               "wifi",
		entities.CheckBluetooth:          "bluetooth",
		entities.CheckCellular:           "cellular",
		entities.CheckSimReader:          "simReader",
		entities.CheckChargingPort:       "chargingPort",
		entities.CheckWirelessCharging:   "wirelessCharger",
		entities.CheckBattery:            "battery",
		entities.CheckSideButtons:        "sideButtons",
		entities.CheckVibration:          "vibration",
		entities.CheckProximitySensor:    "proximitySensor",
		entities.CheckAmbientLightSensor: "ambientLightSensor",
		entities.CheckFaceID:             "faceID",
		entities.CheckFingerprint:        "fingerprint",
		entities.CheckNFC:                "nfc",
		entities.CheckGPS:                "gps",
		entities.CheckHeadphoneJack:      "headphoneJack",
		entities.CheckFlashlight:         "flashlight",
		entities.CheckGlassBroken:        "glassBroken",
		entities.CheckFrameDetached:      "frameDetached",
	}
)

// FieldNames returns the remote field name of every check for a mode.
func FieldNames(mode entities.DiagnosticMode) (map[entities.CheckID]string, error) {
	switch mode {
	case entities.DiagnosticModeIncoming:
		return incomingFields, nil
	case entities.DiagnosticModeExit:
		return exitFields, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// Hydrate builds a mode's state from a remote record. Every check is overwritten;
// fields the record lacks become false and fields it has in excess are ignored.
func Hydrate(mode entities.DiagnosticMode, remote map[string]bool) (State, error) {
	names, err := FieldNames(mode)
	if err != nil {
		return State{}, err
	}
	flags := make(Flags, len(entities.AllChecks))
	for _, id := range entities.AllChecks {
		flags[id] = remote[names[id]]
	}
	return State{Mode: mode, Flags: flags, PowerFlag: entities.PowerCheck}, nil
}

// Remote renders the full record written back on save.
func (s State) Remote() map[string]bool {
	names, err := FieldNames(s.Mode)
	if err != nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(names))
	for _, id := range entities.AllChecks {
		out[names[id]] = s.Flags[id]
	}
	return out
}
