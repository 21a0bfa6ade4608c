package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/exthash"
)

func main() {
	// Create a table with small buckets so splits happen early
	ht, err := exthash.New[string, int](2, exthash.StringHash)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Extendible hash table created")

	// Insert some data
	fruits := []string{
		"apple", "banana", "cherry", "date", "elderberry",
		"fig", "grape", "honeydew", "kiwi", "lemon",
	}
	for i, name := range fruits {
		if err := ht.Insert(name, i*100); err != nil {
			log.Fatalf("Failed to insert %q: %v", name, err)
		}
	}

	fmt.Printf("Inserted %d key-value pairs\n", len(fruits))
	fmt.Printf("Global depth: %d, buckets: %d\n", ht.GlobalDepth(), ht.BucketCount())

	// Retrieve and display some values
	for _, name := range []string{"apple", "grape", "mango"} {
		if v, ok := ht.Find(name); ok {
			fmt.Printf("Key %q => Value %d\n", name, v)
		} else {
			fmt.Printf("Key %q not found\n", name)
		}
	}

	// Update a value
	if err := ht.Insert("apple", 999); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}

	// Verify the update
	if v, ok := ht.Find("apple"); ok {
		fmt.Printf("Updated key \"apple\" => Value %d\n", v)
	}

	// Remove a key
	if ht.Remove("banana") {
		fmt.Println("Removed \"banana\"")
	}
	if _, ok := ht.Find("banana"); !ok {
		fmt.Println("\"banana\" no longer present")
	}

	fmt.Println("Example completed successfully")
}
