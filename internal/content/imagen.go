package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"google.golang.org/genai"
)

// imagenModel is the Imagen model used for educational illustrations.
const imagenModel = "imagen-3.0-generate-002"

// ImagenGenerator implements Generator for the image modality using the
// Google genai SDK. Audio and video have no backend yet and report a
// collaborator failure, which the content service converts into fallback
// material.
type ImagenGenerator struct {
	client  *genai.Client
	dir     string // artifacts directory
	counter atomic.Int64
}

// NewImagenGenerator creates an Imagen-backed generator writing artifacts
// under dir.
func NewImagenGenerator(client *genai.Client, dir string) (*ImagenGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifacts dir: %w", err)
	}
	return &ImagenGenerator{client: client, dir: dir}, nil
}

func (g *ImagenGenerator) Generate(ctx context.Context, prompt string, modality Modality) (*Artifact, error) {
	if modality != ModalityImage {
		return nil, fmt.Errorf("no %s backend configured", modality)
	}

	resp, err := g.client.Models.GenerateImages(ctx, imagenModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       "9:16",
		SafetyFilterLevel: genai.SafetyFilterLevelBlockLowAndAbove,
		PersonGeneration:  genai.PersonGenerationAllowAdult,
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("no images generated")
	}

	name := fmt.Sprintf("educational_image_%d.png", g.counter.Add(1))
	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, resp.GeneratedImages[0].Image.ImageBytes, 0o644); err != nil {
		return nil, fmt.Errorf("save image artifact: %w", err)
	}

	return &Artifact{Name: name, URL: path}, nil
}
