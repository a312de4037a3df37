package blocktree

import "github.com/jcorbin/commitfmt/catline"

// parseList consumes a run of ListItems starting at i, recursing into
// nested Lists per spec §4.3: a sibling item shares the first item's
// marker column; a deeper marker column opens a List owned by the item
// most recently appended; a shallower marker column (or any non-list,
// non-continuation content) closes this list and returns control to the
// caller. lines[i] must already be classified ListItem.
func parseList(lines []catline.CatLine, i int) (List, int) {
	var list List
	n := len(lines)
	baseCol := lines[i].Indent

	for i < n {
		j := skipEmpty(lines, i)
		if j >= n {
			i = j
			break
		}
		cur := lines[j]

		if cur.Final != catline.ListItem {
			i = j
			break
		}
		if cur.Indent < baseCol {
			i = j
			break
		}
		if cur.Indent > baseCol {
			nested, next := parseList(lines, j)
			last := &list.Items[len(list.Items)-1]
			last.Nested = &nested
			i = next
			continue
		}

		// cur.Indent == baseCol: a sibling item of this list.
		textCol, _ := cur.MarkerTextColumn()
		if textCol <= cur.Indent {
			textCol = cur.Indent + 1
		}
		item := ListItem{Marker: cur, MarkerCol: cur.Indent, TextCol: textCol}
		i = j + 1

		for i < n {
			k := skipEmpty(lines, i)
			if k >= n {
				i = k
				break
			}
			next := lines[k]
			if next.Final == catline.ListItem {
				i = k
				break
			}
			if next.Indent >= item.TextCol {
				item.Continuation = append(item.Continuation, next)
				i = k + 1
				continue
			}
			i = k
			break
		}

		list.Items = append(list.Items, item)
	}

	return list, i
}
