package runtime

import (
	"testing"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

func TestApplyImageConfig(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Cmd = []string{"/bin/sh"}
	config.Config.Labels = map[string]string{"base": "kept"}

	applyImageConfig(&config, ImageConfig{
		Entrypoint:   []string{"mass", "--config", "/data"},
		ExposedPorts: []string{"8095/tcp"},
		Volumes:      []string{"/data"},
		Labels:       map[string]string{"org.opencontainers.image.version": "2.5.1"},
	})

	if got := config.Config.Entrypoint; len(got) != 3 || got[0] != "mass" {
		t.Fatalf("entrypoint = %v, want [mass --config /data]", got)
	}
	if config.Config.Cmd != nil {
		t.Fatalf("cmd = %v, want nil after entrypoint override", config.Config.Cmd)
	}
	if _, ok := config.Config.ExposedPorts["8095/tcp"]; !ok {
		t.Fatalf("exposed ports = %v, missing 8095/tcp", config.Config.ExposedPorts)
	}
	if _, ok := config.Config.Volumes["/data"]; !ok {
		t.Fatalf("volumes = %v, missing /data", config.Config.Volumes)
	}
	if config.Config.Labels["base"] != "kept" {
		t.Fatal("base image label dropped by merge")
	}
	if config.Config.Labels["org.opencontainers.image.version"] != "2.5.1" {
		t.Fatalf("labels = %v, missing version", config.Config.Labels)
	}
}

func TestApplyImageConfigEmpty(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Cmd = []string{"/bin/sh"}

	applyImageConfig(&config, ImageConfig{})

	if len(config.Config.Cmd) != 1 {
		t.Fatal("empty config must not touch the base Cmd")
	}
	if config.Config.Entrypoint != nil || config.Config.ExposedPorts != nil || config.Config.Volumes != nil || config.Config.Labels != nil {
		t.Fatal("empty config mutated base image settings")
	}
}

func TestManifestGCLabels(t *testing.T) {
	m := ocispec.Manifest{
		Config: ocispec.Descriptor{
			Digest: digest.FromString("config"),
		},
		Layers: []ocispec.Descriptor{
			{Digest: digest.FromString("layer0")},
			{Digest: digest.FromString("layer1")},
		},
	}

	labels := manifestGCLabels(m)

	configLabel := labels["containerd.io/gc.ref.content.config"]
	if configLabel != m.Config.Digest.String() {
		t.Fatalf("config label = %q, want %q", configLabel, m.Config.Digest.String())
	}

	for i, layer := range m.Layers {
		key := "containerd.io/gc.ref.content.l." + string(rune('0'+i))
		got := labels[key]
		if got != layer.Digest.String() {
			t.Fatalf("labels[%q] = %q, want %q", key, got, layer.Digest.String())
		}
	}

	if len(labels) != 3 {
		t.Fatalf("len(labels) = %d, want 3", len(labels))
	}
}

func TestIndexGCLabels(t *testing.T) {
	idx := ocispec.Index{
		Manifests: []ocispec.Descriptor{
			{Digest: digest.FromString("m0")},
			{Digest: digest.FromString("m1")},
		},
	}

	labels := indexGCLabels(idx)
	if len(labels) != 2 {
		t.Fatalf("len(labels) = %d, want 2", len(labels))
	}
	if labels["containerd.io/gc.ref.content.m.0"] != idx.Manifests[0].Digest.String() {
		t.Fatal("manifest 0 label mismatch")
	}
	if labels["containerd.io/gc.ref.content.m.1"] != idx.Manifests[1].Digest.String() {
		t.Fatal("manifest 1 label mismatch")
	}
}
