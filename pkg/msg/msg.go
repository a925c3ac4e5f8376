// package msg renders query results for the terminal.
package msg

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"truckctl/pkg/foodtruck"
	"truckctl/pkg/proximity"
)

const MsgNoTrucks = "No trucks found. Better luck at another location!"

func LocationsTable(locations []foodtruck.Location) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)

	table.SetHeader([]string{"UID", "Name", "Address"})
	for _, l := range locations {
		table.Append([]string{strconv.Itoa(l.UID), l.Name, l.Address})
	}

	table.SetAutoFormatHeaders(false)
	table.Render()

	return b.String()
}

func RankedTable(ranked []proximity.RankedLocation) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)

	table.SetHeader([]string{"Miles", "UID", "Name", "Address"})
	for _, r := range ranked {
		table.Append([]string{
			fmt.Sprintf("%.2f", r.Miles),
			strconv.Itoa(r.Location.UID),
			r.Location.Name,
			r.Location.Address,
		})
	}

	table.SetAutoFormatHeaders(false)
	table.Render()

	return b.String()
}

func TrucksTable(trucks []foodtruck.Truck) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)

	table.SetHeader([]string{"Truck", "Style"})
	for _, t := range trucks {
		table.Append([]string{t.Name, t.Style()})
	}

	table.SetRowLine(true)
	table.SetRowSeparator("-")
	table.SetAutoFormatHeaders(false)
	table.Render()

	return b.String()
}

func NearestMessage(l foodtruck.Location) string {
	return fmt.Sprintf("Your nearest food-truck location is %s at %s (uid %d).", l.Name, l.Address, l.UID)
}
