//go:build !headless

package sound

const headlessBuild = false
