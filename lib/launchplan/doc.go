// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

// Package launchplan renders a composed fleet into the concrete commands
// a ROS 2 supervisor would run, without running anything.
//
// Each [Entry] carries the argv for one node:
//
//	[prefix...] ros2 run <package> <executable> --ros-args
//	    -r __node:=<id> [-r from:=to ...] [--params-file <id>.yaml]
//
// and, when the node has parameters, the params file in the ROS 2
// layout:
//
//	<id>:
//	  ros__parameters:
//	    max_vx: 0.3
//
// Parameter kinds survive rendering. Doubles always carry a decimal
// point, and strings that would otherwise read as numbers or booleans
// are quoted, so a node declaring a double parameter never receives an
// integer.
//
// [Plan.WriteParamsFiles] materializes the params files in a directory
// and returns a plan whose argv points at them.
package launchplan
