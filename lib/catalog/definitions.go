// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/robofleet/robofleet/lib/schema/fleet"
	"github.com/robofleet/robofleet/lib/searchpath"
)

// UIRootSubpath is the web UI's static root relative to the workspace.
const UIRootSubpath = "src/web_ui/src"

// Node IDs defined by [Definitions].
const (
	RosbridgeWebsocket = "rosbridge_websocket"
	RosapiNode         = "rosapi_node"
	IOReeman           = "io_reeman"
	DS4Driver          = "ds4_driver"
	WifiControl        = "wifi_control"
	WebVideoServer     = "web_video_server"
	UIServer           = "ui_server"
	Master             = "master"
	Telemetry          = "telemetry"
	KeyboardInput      = "keyboard_input"
	AudioController    = "audio_controller"
	Capture            = "capture"
	Detection          = "detection"
	HandTrack          = "hand_track"
	FaceDetection      = "face_detection"
)

// respawning returns a screen-output, always-restart descriptor, the
// shape of nearly every node on the robot.
func respawning(id, pkg, executable string) fleet.NodeDescriptor {
	return fleet.NodeDescriptor{
		ID:         id,
		Package:    pkg,
		Executable: executable,
		Output:     fleet.OutputScreen,
		Restart:    fleet.RestartAlways,
	}
}

// Definitions returns a fresh descriptor for every node the robot knows
// about. Only io_reeman and ui_server read paths.
func Definitions(paths fleet.ConfigPaths) []fleet.NodeDescriptor {
	ioReeman := respawning(IOReeman, "communication", "io_reeman")
	ioReeman.Parameters = fleet.ParameterSet{
		"max_vx":               fleet.Double(0.3),
		"max_vth":              fleet.Double(0.3),
		"reeman_controller_ip": fleet.String("10.42.0.166"),
		"configs_path":         fleet.Path(paths.ConfigDir),
		"target_point_1_x":     fleet.Double(2.0),
		"target_point_1_y":     fleet.Double(0.0),
		"target_point_1_yaw":   fleet.Double(0.0),
		"target_point_2_x":     fleet.Double(0.0),
		"target_point_2_y":     fleet.Double(2.0),
		"target_point_2_yaw":   fleet.Double(1.57),
	}

	ds4Driver := respawning(DS4Driver, "ds4_driver", "ds4_driver_node.py")
	ds4Driver.Remaps = []fleet.Remap{{From: "/status", To: "/ds4/status"}}

	wifiControl := respawning(WifiControl, "communication", "wifi_control")
	wifiControl.Parameters = fleet.ParameterSet{
		"hotspot_ssid":     fleet.String("gh_template"),
		"hotspot_password": fleet.String("gh_template"),
	}

	uiServer := respawning(UIServer, "web_ui", "ui_server.py")
	uiServer.Parameters = fleet.ParameterSet{
		"ui_root_path": fleet.Path(searchpath.Join(paths.WorkspaceRoot, UIRootSubpath)),
	}

	master := respawning(Master, "master", "master")
	master.ExecutionPrefix = "nice -n -10"

	telemetry := respawning(Telemetry, "communication", "telemetry.py")
	telemetry.Parameters = fleet.ParameterSet{
		"INFLUXDB_URL":      fleet.String("http://172.30.37.21:8086"),
		"INFLUXDB_USERNAME": fleet.String("awm462"),
		"INFLUXDB_PASSWORD": fleet.String("wildan462"),
		"INFLUXDB_ORG":      fleet.String("awmawm"),
		"INFLUXDB_BUCKET":   fleet.String("ujiCoba"),
		"ROBOT_NAME":        fleet.String("gh_template"),
	}

	// Runs in its own terminal so an operator can type into it; a closed
	// terminal is deliberate, so it is not restarted.
	keyboardInput := fleet.NodeDescriptor{
		ID:              KeyboardInput,
		Package:         "hardware",
		Executable:      "keyboard_input",
		Output:          fleet.OutputScreen,
		Restart:         fleet.RestartNever,
		ExecutionPrefix: "gnome-terminal --",
	}

	capture := respawning(Capture, "vision", "capture")
	capture.Parameters = fleet.ParameterSet{
		"camera_path": fleet.Path("/dev/v4l/by-id/usb-046d_C922_Pro_Stream_Webcam_3BD7DCCF-video-index0"),
	}

	return []fleet.NodeDescriptor{
		respawning(RosbridgeWebsocket, "rosbridge_server", "rosbridge_websocket"),
		respawning(RosapiNode, "rosapi", "rosapi_node"),
		ioReeman,
		ds4Driver,
		wifiControl,
		respawning(WebVideoServer, "web_video_server", "web_video_server"),
		uiServer,
		master,
		telemetry,
		keyboardInput,
		respawning(AudioController, "hardware", "audio_controller.py"),
		capture,
		respawning(Detection, "vision", "detection.py"),
		respawning(HandTrack, "vision", "hand_track.py"),
		respawning(FaceDetection, "vision", "face_detection.py"),
	}
}
