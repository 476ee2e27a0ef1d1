// doc.go
package aptcache

/*
Package aptcache looks packages up in the local apt package index.

It wraps the apt-cache query subcommands and apt-get source:
  - Client.New confirms a name is listed by `apt-cache search`
  - Client.Depends and Client.Recommends list direct relations from `apt-cache depends`
  - Client.GetSource runs `apt-get source` in a directory

Only works on hosts with apt installed.

Basic Usage:

    git, err := aptcache.New(ctx, "git")
    if err != nil {
        return err
    }
    libc, err := aptcache.New(ctx, "libc6")
    if err != nil {
        return err
    }

    deps, err := aptcache.Default().Depends(ctx, git)
    if err != nil {
        return err
    }
    for _, d := range deps {
        if d == libc {
            fmt.Println("git depends on libc6")
        }
    }

Each Depends call is one level deep; walk the result to go further.
*/
