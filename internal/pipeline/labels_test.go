package pipeline

import (
	"testing"

	"github.com/music-assistant/massbuild/internal/config"
)

func TestImageLabelsVersionThreading(t *testing.T) {
	spec := validSpec()
	labels := imageLabels(spec, config.Default().Metadata)

	// Both version labels read from the same parameter that selected the
	// wheel, so the advertised identity cannot drift from the installed
	// package.
	if labels[labelVersion] != spec.AppVersion {
		t.Fatalf("%s = %q, want %q", labelVersion, labels[labelVersion], spec.AppVersion)
	}
	if labels[labelHassVersion] != spec.AppVersion {
		t.Fatalf("%s = %q, want %q", labelHassVersion, labels[labelHassVersion], spec.AppVersion)
	}
}

func TestImageLabelsComplete(t *testing.T) {
	md := config.Default().Metadata
	labels := imageLabels(validSpec(), md)

	want := map[string]string{
		labelTitle:           md.Title,
		labelDescription:     md.Description,
		labelSource:          md.Source,
		labelAuthors:         md.Authors,
		labelDocumentation:   md.Documentation,
		labelLicenses:        md.License,
		labelHassName:        md.Title,
		labelHassDescription: md.Description,
		labelHassType:        md.AddonType,
	}

	for key, value := range want {
		if labels[key] != value {
			t.Errorf("labels[%q] = %q, want %q", key, labels[key], value)
		}
	}

	if labels[labelHassArch] != "amd64" {
		t.Errorf("%s = %q, want amd64", labelHassArch, labels[labelHassArch])
	}
}

func TestImageLabelsPlatform(t *testing.T) {
	md := config.Default().Metadata

	amd := validSpec()
	arm := validSpec()
	arm.Platform = "linux/arm64"

	amdLabels := imageLabels(amd, md)
	armLabels := imageLabels(arm, md)

	if amdLabels[labelHassArch] == armLabels[labelHassArch] {
		t.Fatal("architecture label must follow the target platform")
	}

	// Everything except the architecture label is platform-invariant.
	for key, value := range amdLabels {
		if key == labelHassArch {
			continue
		}
		if armLabels[key] != value {
			t.Errorf("labels[%q] varies with platform: %q vs %q", key, value, armLabels[key])
		}
	}
}
