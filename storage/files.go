package storage

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pb "github.com/evilsocket/fastmath/proto"

	"github.com/evilsocket/islazy/fs"
	"github.com/golang/protobuf/proto"
)

const (
	// DatFileExt holds the file extension of the array data files.
	DatFileExt = ".dat"
	// files being written, renamed once complete
	tmpFileExt = ".tmp"
)

// dataFiles creates the folder if needed and returns its absolute path
// together with the data files found in it.
func dataFiles(dataPath string) (string, []string, error) {
	dataPath, err := filepath.Abs(dataPath)
	if err != nil {
		return "", nil, err
	}

	if !fs.Exists(dataPath) {
		if err := os.MkdirAll(dataPath, 0755); err != nil {
			return "", nil, err
		}
	} else if info, err := os.Stat(dataPath); err != nil {
		return "", nil, err
	} else if !info.IsDir() {
		return "", nil, fmt.Errorf("%s is not a folder", dataPath)
	}

	entries, err := ioutil.ReadDir(dataPath)
	if err != nil {
		return "", nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if name := entry.Name(); filepath.Ext(name) == DatFileExt {
			files = append(files, filepath.Join(dataPath, name))
		}
	}
	return dataPath, files, nil
}

// idOfFile returns the identifier encoded in a data file name.
func idOfFile(fileName string) (uint64, error) {
	base := strings.TrimSuffix(filepath.Base(fileName), DatFileExt)
	return strconv.ParseUint(base, 10, 64)
}

func readArray(fileName string) (*pb.Array, error) {
	array := new(pb.Array)
	if data, err := ioutil.ReadFile(fileName); err != nil {
		return nil, fmt.Errorf("error while reading %s: %s", fileName, err)
	} else if err = proto.Unmarshal(data, array); err != nil {
		return nil, fmt.Errorf("error while deserializing %s: %s", fileName, err)
	}
	return array, nil
}

// writeArray replaces the contents of fileName only once the new data
// has been completely written.
func writeArray(array *pb.Array, fileName string) error {
	data, err := proto.Marshal(array)
	if err != nil {
		return fmt.Errorf("error while serializing array %d: %s", array.Id, err)
	}

	tmpName := fileName + tmpFileExt
	if err = ioutil.WriteFile(tmpName, data, 0644); err != nil {
		return fmt.Errorf("error while saving array %d: %s", array.Id, err)
	} else if err = os.Rename(tmpName, fileName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error while saving array %d: %s", array.Id, err)
	}
	return nil
}
