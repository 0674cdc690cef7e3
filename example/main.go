package main

import (
	"fmt"
	"math"

	add "github.com/IrineSistiana/simple-add"
)

func main() {
	fmt.Println(add.Add(5, 10))            // 15
	fmt.Println(add.Add(math.MaxInt32, 1)) // wraps to math.MinInt32
	fmt.Println(add.AddAll(1, 2, 3, 4))    // 10
}
