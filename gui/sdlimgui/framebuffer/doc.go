// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

// Package framebuffer provides a convenient way of working with OpenGL
// framebuffers. The Single type is a framebuffer object with a single texture
// attached to it.
//
// The Setup() function must be called at least once after NewSingle() and
// called as often as necessary to ensure the dimensions (width and height) are
// correct. Usually this means once per frame.
//
//		hasChanged := fb.Setup(800, 600)
//
// Setup() returns true if the texture data has been recreated in accordance
// with the new dimensions.
//
// The Process() function binds the framebuffer object and runs the supplied
// draw() function. The texture ID is returned and can be used as the input to
// the next shader.
//
//		texture := fb.Process(func() {
//			// 1. set up shader
//			// 2. OpenGL draw (eg. gl.DrawElements()
//		})
//
// After Process() the default framebuffer must be bound again by the caller
// before drawing to the screen.
package framebuffer
