//go:build !unix

package proxy

func isPeerGone(error) bool {
	return false
}
