package misc

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img to fileName, creating or truncating it.
func SavePNG(fileName string, img image.Image) error {
	if fileName == "" {
		return fmt.Errorf("no filename supplied")
	}
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %s", fileName, err)
	}
	err = png.Encode(file, img)
	if err != nil {
		file.Close()
		return fmt.Errorf("unable to encode image %s - %s", fileName, err)
	}
	err = file.Close()
	if err != nil {
		return fmt.Errorf("unable to close image %s - %s", fileName, err)
	}

	return nil
}
