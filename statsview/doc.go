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

// Package statsview is a wrapper for the github.com/go-echarts/statsview
// package. Statsview is only available when the binary is built with the
// "statsview" build tag.
//
// The stats server is useful for watching the memory usage of a long running
// session. The RUN and TERM modes launch the server with the -statsview flag.
package statsview
