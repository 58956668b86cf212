package entities

// DiagnosticMode selects one of the two independent checklists of an order.
type DiagnosticMode string

const (
	DiagnosticModeIncoming DiagnosticMode = "incoming"
	DiagnosticModeExit     DiagnosticMode = "exit"
)

func (m DiagnosticMode) IsValid() bool {
	return m == DiagnosticModeIncoming || m == DiagnosticModeExit
}

// CheckID identifies one diagnostic check. The set is closed: AllChecks lists it.
type CheckID string

const (
	CheckPowerOn            CheckID = "power_on"
	CheckTouchscreen        CheckID = "touchscreen"
	CheckDisplay            CheckID = "display"
	CheckFrontCamera        CheckID = "front_camera"
	CheckRearCamera         CheckID = "rear_camera"
	CheckEarpiece           CheckID = "earpiece"
	CheckLoudspeaker        CheckID = "loudspeaker"
	CheckMicrophone         CheckID = "microphone"
	CheckWifi               CheckID = "wifi"
	CheckBluetooth          CheckID = "bluetooth"
	CheckCellular           CheckID = "cellular"
	CheckSimReader          CheckID = "sim_reader"
	CheckChargingPort       CheckID = "charging_port"
	CheckWirelessCharging   CheckID = "wireless_charging"
	CheckBattery            CheckID = "battery"
	CheckSideButtons        CheckID = "side_buttons"
	CheckVibration          CheckID = "vibration"
	CheckProximitySensor    CheckID = "proximity_sensor"
	CheckAmbientLightSensor CheckID = "ambient_light_sensor"
	CheckFaceID             CheckID = "face_id"
	CheckFingerprint        CheckID = "fingerprint"
	CheckNFC                CheckID = "nfc"
	CheckGPS                CheckID = "gps"
	CheckHeadphoneJack      CheckID = "headphone_jack"
	CheckFlashlight         CheckID = "flashlight"
	CheckGlassBroken        CheckID = "glass_broken"
	CheckFrameDetached      CheckID = "frame_detached"
)

// PowerCheck is the power flag: while it is off every other check of the same
// mode is disabled for interaction.
const PowerCheck = CheckPowerOn

var AllChecks = []CheckID{
	CheckPowerOn,
	CheckTouchscreen,
	CheckDisplay,
	CheckFrontCamera,
	CheckRearCamera,
	CheckEarpiece,
	CheckLoudspeaker,
	CheckMicrophone,
	CheckWifi,
	CheckBluetooth,
	CheckCellular,
	CheckSimReader,
	CheckChargingPort,
	CheckWirelessCharging,
	CheckBattery,
	CheckSideButtons,
	CheckVibration,
	CheckProximitySensor,
	CheckAmbientLightSensor,
	CheckFaceID,
	CheckFingerprint,
	CheckNFC,
	CheckGPS,
	CheckHeadphoneJack,
	CheckFlashlight,
	CheckGlassBroken,
	CheckFrameDetached,
}

func (c CheckID) IsValid() bool {
	for _, id := range AllChecks {
		if id == c {
			return true
		}
	}
	return false
}
