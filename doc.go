// Package radial renders a falling-block game grid through a spinning
// radial view.
//
// The rectangular game grid is mapped onto an annulus: columns become angles
// and rows become radii, with the first row on the outer edge and the last
// row on the inner edge. Every frame the view is redrawn at a slowly
// increasing angular offset, so the whole board appears to rotate.
//
// The pipeline is split into small packages:
//
//   - [github.com/plus3/radial/pixbuf]: bounds-checked pixel and texel buffers
//   - [github.com/plus3/radial/palette]: the closed color enumeration
//   - [github.com/plus3/radial/projector]: destination pixel to grid cell mapping
//   - [github.com/plus3/radial/raster]: game grid to texture rasterization
//   - [github.com/plus3/radial/compose]: offscreen frame composition and HUD
//   - [github.com/plus3/radial/present]: down/up sampling onto the display
//   - [github.com/plus3/radial/loop]: fixed-step clock driving rotation and game ticks
//
// The game rules live behind [github.com/plus3/radial/game.Source]; the
// [github.com/plus3/radial/tetris] package provides a reference implementation.
//
// This package itself only holds the shared logger. See [SetLogger].
package radial
