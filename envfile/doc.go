// Package envfile reads development overlay files in KEY=value form.
//
// An overlay file supplements the process environment during local
// development. It's read exactly once, before the secrets snapshot is frozen.
// Values already present in the real environment always win over the overlay.
package envfile
