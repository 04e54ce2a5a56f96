package iomock

//go:generate go tool mockgen -typed=false -destination=writer.go -package=iomock io Writer
