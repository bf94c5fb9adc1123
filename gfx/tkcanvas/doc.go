// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tkcanvas draws scripted objects on a Tk canvas by sending tagged
// canvas commands to the host GUI.
//
// Every item an object creates carries two tags: the object tag, shared by
// everything the object ever draws, and a fresh paint tag per item. A pass
// starts by deleting the object tag, so each pass replaces the previous
// one. On the first pass after the object becomes visible an invisible
// order line is created; later passes lower the object tag below it so an
// object keeps its stacking position among its siblings.
//
// Importing this package registers the "tkcanvas" backend with package gfx.
package tkcanvas
