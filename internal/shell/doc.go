// Package shell provides the interactive-shell side of wd. It generates
// the wd() wrapper function (zsh, bash, fish) that captures warp emissions
// and performs the actual cd, plus the rc-file hook block that loads the
// wrapper via eval.
package shell
