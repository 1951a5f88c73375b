package main

import (
	"os"
)

func main() {
	// Ненулевой код только при ошибке самого CLI (например, неизвестный флаг).
	// Ошибки внутри демо обрабатываются на месте.
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
