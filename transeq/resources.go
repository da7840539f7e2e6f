package transeq

import (
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

const (
	mb = 1024 * 1024

	// max length of a single line, or of a single fasta line
	maxSeqLength = 100 * mb
	// never use more than this fraction of the total memory
	// for a single line
	memoryRatio = 8
)

// DefaultNumWorker returns the number of physical cores, as hyperthreads
// don't speed up translation
func DefaultNumWorker() int {

	nCPU := runtime.NumCPU()
	if cpuid.CPU.ThreadsPerCore > 1 {
		nCPU /= cpuid.CPU.ThreadsPerCore
	}
	if nCPU < 1 {
		nCPU = 1
	}
	return nCPU
}

// scannerBufferSize returns the max size of a token for the input scanner
func scannerBufferSize() int {
	return bufferSizeFor(memory.TotalMemory())
}

func bufferSizeFor(totalMemory uint64) int {
	// total memory is 0 when it can't be determined
	if totalMemory == 0 || totalMemory/memoryRatio >= maxSeqLength {
		return maxSeqLength
	}
	size := int(totalMemory / memoryRatio)
	if size < 64*1024 {
		size = 64 * 1024
	}
	return size
}
