package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/music-assistant/massbuild/internal/config"
	"github.com/music-assistant/massbuild/internal/paths"
	"github.com/music-assistant/massbuild/internal/pipeline"
	"github.com/music-assistant/massbuild/internal/runtime"
)

// Represents the 'massbuild build' command.
type BuildCmd struct {
	AppVersion   string `arg:"" help:"Application version to package."`
	BaseVersion  string `arg:"" help:"Base image version to build on."`
	Package      string `help:"Distribution package name." default:"music-assistant"`
	Platform     string `short:"p" help:"Target platform (e.g. linux/amd64). Defaults to the host platform." placeholder:"OS/ARCH"`
	Mirror       string `short:"m" required:"" help:"Pinned dependency mirror: an https URL or a local directory." placeholder:"URL|DIR"`
	Requirements string `short:"r" required:"" help:"Pinned dependency manifest file." placeholder:"FILE" type:"existingfile"`
	Dist         string `required:"" help:"Directory containing the application wheel." placeholder:"DIR" type:"existingdir"`
	Bases        string `required:"" help:"Directory containing base image archives." placeholder:"DIR" type:"existingdir"`
	Config       string `short:"c" help:"Image configuration file." placeholder:"FILE" type:"existingfile"`
	Output       string `short:"o" help:"Output directory for the image archive. Defaults to the image cache." placeholder:"DIR"`

	ContainerdAddress   string `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	ContainerdNamespace string `help:"Containerd namespace." default:"${containerd_namespace}"`
}

// Executes the build command.
//
// Runs the full two-phase pipeline directly against containerd, without
// going through the daemon, and prints the path of the exported image.
func (c *BuildCmd) Run(ctx context.Context) error {
	rt, err := runtime.New(c.ContainerdAddress, c.ContainerdNamespace)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg := config.Default()
	if c.Config != "" {
		cfg, err = config.Load(c.Config)
		if err != nil {
			return err
		}
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(paths.Images(), c.Package+"-"+c.AppVersion)
	}

	result, err := pipeline.Run(ctx, rt, pipeline.Options{
		Spec: pipeline.Spec{
			Package:      c.Package,
			AppVersion:   c.AppVersion,
			BaseVersion:  c.BaseVersion,
			Platform:     c.Platform,
			Mirror:       c.Mirror,
			Requirements: c.Requirements,
			Dist:         c.Dist,
			Bases:        c.Bases,
		},
		Config: cfg,
		Output: output,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Output)
	return nil
}
