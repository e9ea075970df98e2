// pkg/env/doc.go
package env

/*
Package env turns resolved package handles into a build environment.

It handles:
  - Aggregating library directories into colon-joined search paths
  - Composing compiler include flags and linker search flags
  - Assembling the final variable set and the shell hook that puts the
    pinned toolchain on PATH

Everything here is a pure function of its inputs. Reading the toolchain
descriptor and resolving package names happen upstream; applying the
snapshot to a process is left to the caller.

Basic Usage:

    libPath := env.LibraryPath(libs)
    include := env.Compose(headers, env.IncludeFlag, `-I"/opt/glib/include/glib-2.0"`)
    rustFlags := env.Compose(nil, env.LinkSearchFlag)

    loc := env.ResolveLocations(os.LookupEnv, home)
    snap := env.NewAssembler(loc, env.DefaultTriple).Assemble(desc, libPath, include, rustFlags)

    for _, kv := range snap.Environ() {
        fmt.Println(kv) // LD_LIBRARY_PATH=/nix/store/...-vulkan-loader-1.3.268/lib:...
    }

Variables:

    RUSTC_VERSION             toolchain channel from the descriptor
    LD_LIBRARY_PATH           <root>/lib of every runtime library, in order
    BINDGEN_EXTRA_CLANG_ARGS  -I flags for the binding generator
    RUSTFLAGS                 -L<root>/lib for extra link search paths
    shellHook                 startup script extending PATH
    LIBCLANG_PATH             optional, libclang library directory
    PKG_CONFIG_PATH           optional, <root>/lib/pkgconfig directories
*/
