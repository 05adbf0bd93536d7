// Package runtime manages build containers backed by containerd.
//
// A [Runtime] connects to a containerd daemon and provides image import
// and container creation. Base image OCI archives are imported, tagged
// with a deterministic content hash, unpacked for the target platform,
// and used to create containers with overlayfs snapshots.
//
// Each [Container] wraps a running containerd task. Build commands can be
// executed inside the container, files can be copied in and out as tar
// streams, permission modes can be fixed up, and the final filesystem
// state can be committed and exported as a new OCI archive carrying the
// image configuration (entrypoint, exposed ports, volumes, labels). When
// the container is no longer needed it should be destroyed to release
// its snapshot and task resources.
//
// Example usage:
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "massbuild")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	ctr, err := rt.StartContainer(ctx, "base.tar", "builder-1", "linux/amd64")
//	if err != nil {
//	    return err
//	}
//	defer ctr.Destroy(ctx)
//
//	result, err := ctr.Exec(ctx, nil, "", "chmod", "-R", "777", "/app")
//	if err != nil {
//	    return err
//	}
//
//	err = ctr.Export(ctx, "dist", runtime.ImageConfig{
//	    Entrypoint: []string{"mass", "--config", "/data"},
//	})
package runtime
