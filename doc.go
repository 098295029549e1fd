// Package qoi2 implements a lossless image codec for raster images with
// three or four 8-bit channels per pixel (RGB or RGBA, un-premultiplied
// alpha). It is an incompatible adaptation of the "Quite OK Image" (QOI)
// format with a richer chunk set — three luma-difference resolutions
// (LUMA, LUMA2, LUMA3) plus a dedicated gray chunk — aimed at improving
// compression on photographic content.
//
// Original QOI format and reference implementation by Dominic Szablewski
// (https://phoboslab.org). This package's Go rendering of the format is an
// independent adaptation; its chunk tags and bit layouts are not
// wire-compatible with classic QOI.
//
// -- LICENSE: The MIT License (MIT)
//
// Copyright (c) 2021 Dominic Szablewski
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
package qoi2
