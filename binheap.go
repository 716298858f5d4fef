package binheap

var (
	Name      = "BinHeap"
	License   = "GPLv3"
	Licensing = "Licensed under the GNU Public License 3.0"
	Version   = "0.1.0"
)
