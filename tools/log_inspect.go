package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	pb "talker/proto/chatlog"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// log_inspect dumps the stored messages of a log, oldest first.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	logID := flag.String("log", "messages", "Log to dump")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Seq", "Created At", "ID", "Author", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("msg:%s:", *logID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var record pb.MessageRecord
				if err := record.UnmarshalWire(v); err != nil {
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}
				message := record.ToMessage()
				createdAt := "pending"
				if message.CreatedAt != nil {
					createdAt = message.CreatedAt.Format("2006-01-02 15:04:05.000")
				}
				table.Append([]string{
					strconv.FormatUint(message.Seq, 10),
					createdAt,
					message.ID,
					message.AuthorID,
					strings.ReplaceAll(message.Text, "\n", " "),
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("%d messages in %q\n", count, *logID)
}
