// Package pipeline orchestrates the two-phase image build.
//
// A build runs two dependency-ordered phases, each backed by a container
// created from the same base runtime archive. The builder phase populates
// an isolated dependency environment at a fixed path: the dependency
// manifest is resolved against a pinned package mirror, the pre-built
// application wheel is installed by exact version, and a recursive
// permission overlay is applied as the final step. The assembler phase
// copies the finished environment verbatim into a fresh base image,
// re-applies a narrow permission fix to the mount point, and exports the
// result as an OCI archive carrying the image metadata and the runtime
// entry contract (port, data volume, entrypoint).
//
// Control flow is strictly one-directional; the assembler never starts
// unless the builder completed, and any failure aborts the whole run
// without producing an image. Container operations are delegated to the
// runtime package.
//
// Example usage:
//
//	result, err := pipeline.Run(ctx, rt, pipeline.Options{
//	    Spec: pipeline.Spec{
//	        Package:      "music-assistant",
//	        AppVersion:   "2.5.1",
//	        BaseVersion:  "1.3.0",
//	        Platform:     "linux/amd64",
//	        Mirror:       "https://wheels.example.org/musllinux/",
//	        Requirements: "requirements_all.txt",
//	        Dist:         "dist",
//	        Bases:        "bases",
//	    },
//	    Config: config.Default(),
//	    Output: "out",
//	})
//	if err != nil {
//	    return err
//	}
package pipeline
