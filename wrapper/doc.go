/*
Package wrapper exposes ndarray.NDArray objects to scripts running inside an
otto JavaScript VM.

Register defines the global fastmath module:

	var a = fastmath.ndarray([3, 4]);   // 3 columns, 4 rows
	a.fill(1.0);
	a.at([2, 3], 5.0);                  // store and return
	var b = a.sub(fastmath.ndarray(a.shape));
	var m = a.mul(fastmath.ndarray([4, 3]));
	m.shape;                            // [3, 4]

Errors are thrown into the VM as custom errors named after their class
(ShapeError, LengthMismatchError, RankError, IndexArityError, IndexRangeError),
invalid arguments as TypeError.
*/
package wrapper
