/*
Package storage persists arrays on disk, one protobuf encoded file per array
named after its unique identifier, and keeps them indexed in memory by
identifier and name.
*/
package storage
