package main

import (
	"flag"
	"log"

	"gocv.io/x/gocv"

	"github.com/swdee/go-posemotion/pose"
	"github.com/swdee/go-posemotion/render"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/person.jpg", "Image file to annotate")
	poseFile := flag.String("p", "../data/person-pose.txt", "Pose frame file for the image")
	saveFile := flag.String("o", "../data/person-pose-out.jpg", "Output image file")
	thickness := flag.Int("t", 2, "Skeleton line thickness")
	flag.Parse()

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	// load pose frames captured for the image
	frames, err := pose.LoadFrames(*poseFile, pose.LayoutJoints)

	if err != nil {
		log.Fatal("Error loading pose frames: ", err)
	}

	log.Printf("Loaded %d pose frames", len(frames))

	// draw skeleton overlay
	render.Skeleton(&img, frames, *thickness)

	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save the image to: ", *saveFile)
	}

	log.Println("Saved image to: ", *saveFile)
}
