// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cables

import "cogentcore.org/cables/ui"

// Widget renders the look of a port, plug, cable or cable control.
// It is called while the corresponding params are available through
// [GetPortParams], [GetPlugParams], [GetCableParams] or [GetControlParams],
// and must allocate the region of the widget with the identity they give.
type Widget interface {
	Render(u ui.Ui) ui.Response
}

// WidgetFunc is a function that implements [Widget].
type WidgetFunc func(u ui.Ui) ui.Response

func (f WidgetFunc) Render(u ui.Ui) ui.Response {
	return f(u)
}
