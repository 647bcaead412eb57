/*
go-posemotion builds fixed length motion descriptor vectors from short
temporal sequences of 2-D human pose estimates.  Each descriptor combines
height normalized joint positions, a replicated scalar body velocity signal,
and per joint velocity vectors into a single flattened feature vector
suitable for consumption by a downstream classifier.

The pose estimates themselves come from an upstream inference pipeline such
as a YOLOv8 pose model, which is outside the scope of this library.  Frames
for a single tracked person are assembled with the window package, turned
into a vector by the Descriptor, and persisted as labeled records with the
dataset package.

See example code and usage in the example subdirectory.
*/
package posemotion
