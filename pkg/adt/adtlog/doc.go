// Package adtlog holds the logger used by the library and zap fields that
// encode Option and Result values as structured objects.
package adtlog
