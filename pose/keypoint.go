// Package pose defines the frame data entities produced by an upstream
// pose estimation pipeline and consumed by the descriptor builder.
package pose

// KeyPoint represents the 2-D coordinates of a single anatomical joint
// in a pose estimate
type KeyPoint struct {
	X, Y float64
}

/* default skeleton layout, COCO keypoints plus an appended neck
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
17: Neck
*/

// Joint indexes for the default skeleton layout
const (
	Nose = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	Neck
)

// LayoutJoints is the number of joints in the default skeleton layout
const LayoutJoints = 18
