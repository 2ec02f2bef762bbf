package wrapper

import (
	"fmt"
	"time"

	"github.com/robertkrimen/otto"
)

// Reference is a pure script implementation of the ndarray object, with
// the same behaviour and errors of the native one, used as a baseline by
// the self test and the benchmarks.
const Reference = `
function ndarrayError(name, message) {
	var err = new Error(message);
	err.name = name;
	return err;
}

function JSNDArray(shape) {
	if (!(this instanceof JSNDArray)) {
		return new JSNDArray(shape);
	}
	if (shape.length < 1 || shape.length > 3) {
		throw ndarrayError("ShapeError", "expected 1 to 3 dimensions, got " + shape.length);
	}
	var size = 1;
	for (var i = 0; i < shape.length; i++) {
		if (shape[i] <= 0) {
			throw ndarrayError("ShapeError", "dimension " + i + " must be positive, got " + shape[i]);
		}
		size *= shape[i];
	}
	this.ndim = shape.length;
	this.size = size;
	this.shape = shape.slice(0);
	this.values = [];
	for (var i = 0; i < size; i++) {
		this.values.push(0.0);
	}
}

JSNDArray.prototype.fill = function(value) {
	for (var i = 0; i < this.size; i++) {
		this.values[i] = value;
	}
	return this;
};

JSNDArray.prototype.set = function(values) {
	if (values.length != this.size) {
		throw ndarrayError("LengthMismatchError", "expected " + this.size + " values, got " + values.length);
	}
	for (var i = 0; i < this.size; i++) {
		this.values[i] = values[i] * 1.0;
	}
	return this;
};

JSNDArray.prototype.offset = function(index) {
	if (index.length != this.ndim) {
		throw ndarrayError("IndexArityError", "expected " + this.ndim + ", got " + index.length);
	}
	var block = 1, offset = 0;
	for (var i = 0; i < index.length; i++) {
		if (index[i] < 0 || index[i] >= this.shape[i]) {
			throw ndarrayError("IndexRangeError", "index " + i + " is " + index[i] + ", dimension is " + this.shape[i]);
		}
		offset += block * index[i];
		block *= this.shape[i];
	}
	return offset;
};

JSNDArray.prototype.at = function(index, value) {
	if (typeof index === "number") {
		index = [index];
	}
	var offset = this.offset(index);
	if (arguments.length > 1) {
		this.values[offset] = value;
	}
	return this.values[offset];
};

JSNDArray.prototype.elementwise = function(rhs, op) {
	if (this.size != rhs.size) {
		throw ndarrayError("LengthMismatchError", this.size + " != " + rhs.size);
	}
	var result = new JSNDArray(this.shape);
	for (var i = 0; i < this.size; i++) {
		result.values[i] = op(this.values[i], rhs.values[i]);
	}
	return result;
};

JSNDArray.prototype.add = function(rhs) {
	return this.elementwise(rhs, function(a, b) { return a + b; });
};

JSNDArray.prototype.sub = function(rhs) {
	return this.elementwise(rhs, function(a, b) { return a - b; });
};

JSNDArray.prototype.mul = function(rhs) {
	if (this.ndim > 2 || rhs.ndim > 2) {
		throw ndarrayError("RankError", "matrix product needs rank 1 or 2 operands, got " + this.ndim + " and " + rhs.ndim);
	}
	var inner = this.shape[0];
	var rows = this.ndim == 2 ? this.shape[1] : 1;
	var rhsRows = rhs.ndim == 2 ? rhs.shape[1] : rhs.shape[0];
	var cols = rhs.ndim == 2 ? rhs.shape[0] : 1;
	if (inner != rhsRows) {
		throw ndarrayError("ShapeError", "dimension mismatch, " + inner + " columns vs " + rhsRows + " rows");
	}
	var result = new JSNDArray([cols, rows]);
	for (var r = 0; r < rows; r++) {
		for (var c = 0; c < cols; c++) {
			var sum = 0.0;
			for (var v = 0; v < inner; v++) {
				sum += this.values[v + r * inner] * rhs.values[c + v * cols];
			}
			result.values[c + r * cols] = sum;
		}
	}
	return result;
};

JSNDArray.prototype.data = function() {
	return this.values.slice(0);
};

JSNDArray.prototype.toString = function() {
	return "ndarray(shape=[" + this.shape.join(" ") + "], size=" + this.size + ")";
};

function sameShape(a, b) {
	if (a.length != b.length) {
		return false;
	}
	for (var i = 0; i < a.length; i++) {
		if (a[i] != b[i]) {
			return false;
		}
	}
	return true;
}

function check(cond, what) {
	if (!cond) {
		throw new Error("check failed: " + what);
	}
}

function checkThrows(name, cb) {
	try {
		cb();
	} catch (e) {
		check(e.name == name, "expected " + name + ", got " + e.name);
		return;
	}
	throw new Error("check failed: expected " + name);
}

function selfTest(make) {
	var a = make([3, 4]);
	check(a.ndim == 2, "a.ndim");
	check(sameShape(a.shape, [3, 4]), "a.shape");
	check(a.size == 3 * 4, "a.size");
	for (var y = 0; y < 4; y++) {
		for (var x = 0; x < 3; x++) {
			check(a.at([x, y]) == 0, "a[" + x + "," + y + "] == 0");
		}
	}

	a.fill(1.0);
	for (var y = 0; y < 4; y++) {
		for (var x = 0; x < 3; x++) {
			check(a.at([x, y]) == 1.0, "a[" + x + "," + y + "] == 1");
		}
	}

	var b = make(a.shape);
	check(b.ndim == 2, "b.ndim");
	check(sameShape(b.shape, a.shape), "b.shape");
	check(b.size == a.size, "b.size");
	b.fill(2.0);

	var c = a.sub(b);
	for (var y = 0; y < 4; y++) {
		for (var x = 0; x < 3; x++) {
			check(c.at([x, y]) == -1.0, "c[" + x + "," + y + "] == -1");
		}
	}
	check(a.at([0, 0]) == 1.0 && b.at([0, 0]) == 2.0, "operands unchanged");

	checkThrows("ShapeError", function() { make([1, 2, 3, 4]); });
	checkThrows("IndexArityError", function() { a.at([0]); });
	checkThrows("IndexRangeError", function() { a.at([3, 0]); });
	checkThrows("LengthMismatchError", function() { a.set([1, 2, 3]); });
	checkThrows("LengthMismatchError", function() { a.add(make([2])); });
	checkThrows("RankError", function() { make([2, 2, 2]).mul(a); });

	var l = make([4, 3]);
	var r = make([2, 4]);
	l.set([1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]);
	r.set([1, 2, 3, 4, 5, 6, 7, 8]);
	checkThrows("ShapeError", function() { r.mul(r); });

	var m = l.mul(r);
	check(sameShape(m.shape, [2, 3]), "m.shape");

	var rows = [];
	for (var y = 0; y < 3; y++) {
		var row = [];
		for (var x = 0; x < 2; x++) {
			row.push(m.at([x, y]));
		}
		rows.push(row);
	}
	return rows;
}

function scriptAdd(a, b) {
	return a + b;
}

function benchAdd(add, n) {
	for (var i = 0; i < n; i++) {
		add(1, -3);
	}
}

function benchArrays(make, n) {
	for (var i = 0; i < n; i++) {
		var a = make([4, 4]);
		a.fill(1.0);
		var b = make(a.shape);
		b.fill(2.0);
		var c = a.sub(b);
		a.set([0, 1, 2, 3,
			4, 5, 6, 7,
			8, 9, 0, 1,
			2, 3, 4, 5]);
		var d = a.mul(a);
	}
}
`

// SelfTestRows are the rows of the matrix product computed by the self test.
var SelfTestRows = [][]float64{
	{50, 60},
	{114, 140},
	{178, 220},
}

// LoadReference defines the reference implementation and its helpers in the VM.
func LoadReference(vm *otto.Otto) error {
	_, err := vm.Run(Reference)
	return err
}

func factory(native bool) string {
	if native {
		return ModuleName + ".ndarray"
	}
	return "JSNDArray"
}

// SelfTest runs the self test against the native ndarray implementation or
// the reference one. The VM must already have the module registered.
func SelfTest(vm *otto.Otto, native bool) error {
	if err := LoadReference(vm); err != nil {
		return err
	}

	ret, err := vm.Run(fmt.Sprintf("selfTest(%s);", factory(native)))
	if err != nil {
		return err
	}

	exported, err := Export(ret)
	if err != nil {
		return err
	}

	rows, ok := exported.([]interface{})
	if !ok || len(rows) != len(SelfTestRows) {
		return fmt.Errorf("unexpected self test result %v", exported)
	}
	for y, expected := range SelfTestRows {
		row, ok := rows[y].([]interface{})
		if !ok || len(row) != len(expected) {
			return fmt.Errorf("unexpected row %d: %v", y, rows[y])
		}
		for x, v := range expected {
			if got, ok := toNumber(row[x]); !ok || got != v {
				return fmt.Errorf("m[%d,%d]: expected %v, got %v", x, y, v, row[x])
			}
		}
	}
	return nil
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Benchmark is a named script timed by RunBenchmarks.
type Benchmark struct {
	Name       string
	Iterations int
	// format with the number of iterations
	Code string
}

// Benchmarks compare the reference implementation with the native one.
var Benchmarks = []Benchmark{
	{"script add", 500000, "benchAdd(scriptAdd, %d);"},
	{"native add", 500000, "benchAdd(" + ModuleName + ".add, %d);"},
	{"script ndarray", 10000, "benchArrays(JSNDArray, %d);"},
	{"native ndarray", 10000, "benchArrays(" + ModuleName + ".ndarray, %d);"},
}

// BenchmarkResult is the outcome of a single benchmark.
type BenchmarkResult struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
}

// PerOp returns the average duration of a single iteration.
func (r BenchmarkResult) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// RunBenchmarks times every benchmark in the VM, which must already have the
// module registered. If iterations is positive it overrides the default
// number of iterations of each benchmark.
func RunBenchmarks(vm *otto.Otto, iterations int) ([]BenchmarkResult, error) {
	if err := LoadReference(vm); err != nil {
		return nil, err
	}

	results := make([]BenchmarkResult, 0, len(Benchmarks))
	for _, b := range Benchmarks {
		n := b.Iterations
		if iterations > 0 {
			n = iterations
		}

		start := time.Now()
		if _, err := vm.Run(fmt.Sprintf(b.Code, n)); err != nil {
			return nil, fmt.Errorf("%s: %v", b.Name, err)
		}
		results = append(results, BenchmarkResult{
			Name:       b.Name,
			Iterations: n,
			Elapsed:    time.Since(start),
		})
	}
	return results, nil
}
