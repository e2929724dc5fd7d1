// Package sdkstore resolves the SDK's storage roots and places bundled
// resources, such as the TLS trust certificate, into app storage on first use.
//
// # Quick Start
//
// Give the materializer the host's storage roots and ask for the certificate:
//
//	paths, err := sdkstore.NewDirPaths("/data/data/com.example/files", "/sdcard/Android/data/com.example/files")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := sdkstore.New(paths, nil) // nil source = embedded bundle
//
//	certPath, err := m.CertificatePath()
//	if err != nil {
//	    log.Printf("certificate not ready: %v", err) // certPath is still a usable hint
//	}
//
// The first call creates {internal}/Certificates/modio.crt; later calls, even
// across process restarts, find the file and copy nothing.
//
// # Storage Roots
//
// Internal storage always exists. External storage may be absent, in which
// case ResolveStorageRoot(true) silently returns the internal root:
//
//	root := m.ResolveStorageRoot(true)
//	fmt.Println(root.Kind, root.Path)
//
// Certificates always go to internal storage regardless of preference.
//
// # Asset Sources
//
// NewAssetSource("") serves the embedded bundle. A base path lets the host
// ship replacement files; anything missing there falls back to the bundle:
//
//	src, err := sdkstore.NewAssetSource("/opt/game/sdk-assets")
//	m := sdkstore.New(paths, src)
//
// Bundle entries stored as {name}.gz are decompressed while copying.
//
// # Errors
//
// Materialize and CertificatePath return the constructed path together with
// any error. Failures are also written to the logger set with WithLogger.
// A returned path is a hint, not a guarantee: use TrustPool, which checks the
// file and parses it, before relying on the certificate.
package sdkstore
