package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/evilsocket/fastmath/ndarray"
	pb "github.com/evilsocket/fastmath/proto"

	"github.com/evilsocket/islazy/log"
	"github.com/golang/protobuf/proto"
)

var (
	// ErrInvalidID is returned when the system detects a collision of
	// identifiers, usually due to multiple instances running on the
	// same data path.
	ErrInvalidID = errors.New("identifier is not unique")
	// ErrNotFound is returned when no array is mapped to the
	// queried identifier.
	ErrNotFound = errors.New("array not found")
)

// Arrays keeps pb.Array objects indexed by identifier and name, persisting
// each of them into its own data file. Arrays are always copied in and out
// of the store, callers never share memory with it.
type Arrays struct {
	lock     sync.RWMutex
	dataPath string
	arrays   map[uint64]*pb.Array
	byName   map[string]uint64
	nextID   uint64
}

// LoadArrays creates the data folder if needed and loads all the arrays
// stored in it.
func LoadArrays(dataPath string) (*Arrays, error) {
	absPath, files, err := dataFiles(dataPath)
	if err != nil {
		return nil, err
	}

	a := &Arrays{
		dataPath: absPath,
		arrays:   make(map[uint64]*pb.Array),
		byName:   make(map[string]uint64),
		nextID:   1,
	}

	if nfiles := len(files); nfiles > 0 {
		log.Info("loading %d data files from %s ...", nfiles, absPath)
	}

	for _, fileName := range files {
		array, err := readArray(fileName)
		if err != nil {
			return nil, err
		} else if id, err := idOfFile(fileName); err != nil || id != array.Id {
			log.Warning("%s contains array %d, skipping", fileName, array.Id)
			continue
		}

		a.arrays[array.Id] = array
		a.setName(array)
		// files are not sorted, keep the highest id
		if array.Id >= a.nextID {
			a.nextID = array.Id + 1
		}
	}

	return a, nil
}

func (a *Arrays) pathFor(id uint64) string {
	return filepath.Join(a.dataPath, strconv.FormatUint(id, 10)+DatFileExt)
}

func clone(array *pb.Array) *pb.Array {
	return proto.Clone(array).(*pb.Array)
}

// the most recent array wins a name
func (a *Arrays) setName(array *pb.Array) {
	if array.Name == "" {
		return
	}
	if prev, found := a.byName[array.Name]; !found || array.Id > prev {
		a.byName[array.Name] = array.Id
	}
}

func (a *Arrays) unsetName(array *pb.Array) {
	if id, found := a.byName[array.Name]; found && id == array.Id {
		delete(a.byName, array.Name)
	}
}

// Size returns the number of stored arrays.
func (a *Arrays) Size() int {
	a.lock.RLock()
	defer a.lock.RUnlock()
	return len(a.arrays)
}

// Create validates and stores a copy of the array, setting its
// identifier to a new, unique value.
func (a *Arrays) Create(array *pb.Array) error {
	if _, err := Decode(array); err != nil {
		return err
	}

	a.lock.Lock()
	defer a.lock.Unlock()

	id := a.nextID
	if _, found := a.arrays[id]; found {
		return ErrInvalidID
	}

	stored := clone(array)
	stored.Id = id
	if err := writeArray(stored, a.pathFor(id)); err != nil {
		return err
	}

	array.Id = id
	a.nextID++
	a.arrays[id] = stored
	a.setName(stored)
	return nil
}

// Save encodes and stores an ndarray.NDArray, returning the new identifier.
func (a *Arrays) Save(name string, arr *ndarray.NDArray) (uint64, error) {
	array := Encode(name, arr)
	if err := a.Create(array); err != nil {
		return 0, err
	}
	return array.Id, nil
}

// Update validates and replaces name and contents of a stored array.
func (a *Arrays) Update(array *pb.Array) error {
	if _, err := Decode(array); err != nil {
		return err
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	return a.replace(clone(array))
}

// Replace changes the contents of a stored array keeping its name.
func (a *Arrays) Replace(id uint64, arr *ndarray.NDArray) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	old, found := a.arrays[id]
	if !found {
		return ErrNotFound
	}

	array := Encode(old.Name, arr)
	array.Id = id
	return a.replace(array)
}

// replace stores a validated array, the caller holds the write lock.
func (a *Arrays) replace(array *pb.Array) error {
	old, found := a.arrays[array.Id]
	if !found {
		return ErrNotFound
	} else if err := writeArray(array, a.pathFor(array.Id)); err != nil {
		return err
	}

	a.unsetName(old)
	a.arrays[array.Id] = array
	a.setName(array)
	return nil
}

// Find returns a copy of the array with the given identifier, or nil.
func (a *Arrays) Find(id uint64) *pb.Array {
	a.lock.RLock()
	defer a.lock.RUnlock()

	if array, found := a.arrays[id]; found {
		return clone(array)
	}
	return nil
}

// FindByName returns a copy of the most recently created array with the
// given name, or nil.
func (a *Arrays) FindByName(name string) *pb.Array {
	a.lock.RLock()
	defer a.lock.RUnlock()

	if id, found := a.byName[name]; found {
		return clone(a.arrays[id])
	}
	return nil
}

// Open decodes the array with the given identifier into a new ndarray.NDArray.
func (a *Arrays) Open(id uint64) (*ndarray.NDArray, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	array, found := a.arrays[id]
	if !found {
		return nil, ErrNotFound
	}
	return Decode(array)
}

// List returns copies of all the stored arrays sorted by identifier.
func (a *Arrays) List() []*pb.Array {
	a.lock.RLock()
	defer a.lock.RUnlock()

	list := make([]*pb.Array, 0, len(a.arrays))
	for _, array := range a.arrays {
		list = append(list, clone(array))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Id < list[j].Id
	})
	return list
}

// Delete removes an array and its data file, returning the removed
// array or nil if not found.
func (a *Arrays) Delete(id uint64) *pb.Array {
	a.lock.Lock()
	defer a.lock.Unlock()

	array, found := a.arrays[id]
	if !found {
		return nil
	}

	delete(a.arrays, id)
	a.unsetName(array)

	if err := os.Remove(a.pathFor(id)); err != nil {
		log.Warning("error removing %s: %v", a.pathFor(id), err)
	}
	return array
}
