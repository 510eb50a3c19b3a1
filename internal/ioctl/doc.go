// Package ioctl wraps the ioctl system call for device drivers.
package ioctl
