//go:build headless

package sound

const headlessBuild = true
