/*
Package backend provides an abstraction layer to the available computational backends, currently implemented:

	- naive (naive implementation, no optimizations)
	- blas32 (gonum blas32 interface, the default)
	- gonum (gonum mat dense matrices, float64 internally)

Future:

	- cuda
	- opencl
*/
package backend
