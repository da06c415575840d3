package main

import (
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/seqrotate/pkg/idxrange"
	"github.com/henderiw/seqrotate/pkg/rotate"
	"github.com/henderiw/seqrotate/pkg/seq"
)

func main() {
	ipRange, err := netipx.ParseIPRange("10.0.0.10-10.0.0.20")
	if err != nil {
		panic(err)
	}
	addrs := []netip.Addr{}
	for addr := ipRange.From(); addr.Compare(ipRange.To()) <= 0; addr = addr.Next() {
		addrs = append(addrs, addr)
	}

	// move the middle block of the pool to the front
	rotated, err := rotate.Rotate[netip.Addr](seq.FromSlice(addrs), idxrange.New(4, 7), 0)
	if err != nil {
		panic(err)
	}
	for _, addr := range rotated {
		fmt.Println("addr", addr.String())
	}

	routes := table.Routes{
		table.NewRoute(netip.MustParsePrefix("10.0.0.0/24"), map[string]string{"tier": "bronze"}, nil),
		table.NewRoute(netip.MustParsePrefix("10.0.1.0/24"), map[string]string{"tier": "gold"}, nil),
		table.NewRoute(netip.MustParsePrefix("10.0.2.0/24"), map[string]string{"tier": "bronze"}, nil),
	}

	// slide the gold route forward by one position
	moved, err := rotate.SlideOne[table.Route](seq.FromSlice(routes), 1, 0)
	if err != nil {
		panic(err)
	}
	selector := labels.SelectorFromSet(map[string]string{"tier": "gold"})
	for i, route := range moved {
		fmt.Println("route", i, route.Prefix().String(), "gold", selector.Matches(route.Labels()))
	}
}
