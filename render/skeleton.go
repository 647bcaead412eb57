// Package render draws pose skeleton overlays on images for visual
// inspection of the frame data fed into descriptor construction.
package render

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/swdee/go-posemotion/pose"
)

var (
	// skeleton defines the pose skeleton joints to draw lines between.
	// The numbers are paired, so (17, 0) means draw a line from the neck
	// to the nose.  Indexes follow the default 18 joint layout in the
	// pose package.
	skeleton = [34]int{
		pose.Neck, pose.Nose,
		pose.Nose, pose.LeftEye,
		pose.Nose, pose.RightEye,
		pose.LeftEye, pose.LeftEar,
		pose.RightEye, pose.RightEar,
		pose.Neck, pose.LeftShoulder,
		pose.Neck, pose.RightShoulder,
		pose.LeftShoulder, pose.LeftElbow,
		pose.LeftElbow, pose.LeftWrist,
		pose.RightShoulder, pose.RightElbow,
		pose.RightElbow, pose.RightWrist,
		pose.Neck, pose.LeftHip,
		pose.Neck, pose.RightHip,
		pose.LeftHip, pose.LeftKnee,
		pose.LeftKnee, pose.LeftAnkle,
		pose.RightHip, pose.RightKnee,
		pose.RightKnee, pose.RightAnkle,
	}
)

// Skeleton renders the joints of the provided pose frames on the image,
// drawing limb lines between connected joints and circles at the joints
// themselves.  Frames with a joint count other than the default layout
// are skipped.
func Skeleton(img *gocv.Mat, frames []pose.Frame, lineThickness int) {

	for _, frame := range frames {

		if frame.Len() != pose.LayoutJoints {
			continue
		}

		// draw skeleton lines
		for j := 0; j < len(skeleton)/2; j++ {
			p1 := frame.Joint(skeleton[2*j])
			p2 := frame.Joint(skeleton[2*j+1])

			gocv.Line(img,
				image.Pt(int(p1.X), int(p1.Y)),
				image.Pt(int(p2.X), int(p2.Y)),
				limbColors[j], lineThickness)
		}

		// draw circles at skeleton joints
		for j := 0; j < pose.LayoutJoints; j++ {
			kp := frame.Joint(j)

			gocv.Circle(img, image.Pt(int(kp.X), int(kp.Y)),
				3, jointColors[j], -1)
		}
	}
}
