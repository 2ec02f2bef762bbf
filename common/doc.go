// Package common contains the setup routines shared by the fastmath
// daemon and command line client.
package common
