package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --p1: #dc3545; --p2: #fd7e14; --p3: #ffc107; --p4: #28a745;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, .muted { color: var(--muted); font-size: .875rem; }
.summaries { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .summaries { grid-template-columns: 1fr; } }
.summary { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.summary h3 { font-size: .875rem; margin-bottom: .5rem; }
.summary ul { list-style: none; font-size: .8125rem; }
.summary li { display: flex; justify-content: space-between; padding: .125rem 0; }
.list-toggle { margin-top: .5rem; background: none; border: none; color: var(--accent); cursor: pointer; font-size: .8125rem; }
.filters { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; align-items: center; }
.filters select, .filters input[type=text] { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; }
.filters input[type=text] { min-width: 180px; }
.filters label, .filters .count { font-size: .8125rem; }
.board-group { margin-bottom: 1.5rem; }
.group-header { font-size: 1rem; cursor: pointer; user-select: none; margin-bottom: .5rem; }
.group-header:hover { color: var(--accent); }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
th { cursor: pointer; user-select: none; white-space: nowrap; }
th:hover { color: var(--accent); }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.hidden { display: none; }
.sort-arrow { font-size: .625rem; margin-left: .25rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>Generated {{.GeneratedAt}} &middot; {{.Total}} items in {{len .Groups}} group(s)</p>
</header>

<section class="summaries" id="summaries">
{{template "summary" .OwnerSummary}}
{{template "summary" .StageSummary}}
</section>

<section class="filters" id="filters">
  <input type="text" id="{{.IDs.Search}}" placeholder="Search..." value="{{.Filter.Query}}">
  <select id="{{.IDs.Owner}}">
    <option value="">All owners</option>
    {{range .Owners}}<option value="{{.}}"{{if eq . $.Filter.Owner}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select id="{{.IDs.Stage}}">
    <option value="">All stages</option>
    {{range .Stages}}<option value="{{.Value}}"{{if eq .Value $.Filter.Stage}} selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  <label><input type="checkbox" id="{{.IDs.HideUnassigned}}"{{if .Filter.HideUnassigned}} checked{{end}}> Hide unassigned</label>
  <span class="count"><span id="{{.IDs.VisibleCount}}">{{.VisibleCount}}</span> of {{.Total}} visible</span>
</section>

{{range $g := .Groups}}
<section class="board-group">
<h2 class="group-header" data-group="{{$g.ID}}">{{$g.Name}} <span class="muted">({{$g.Count}})</span></h2>
<div class="group-body" id="{{$g.ID}}">
<table id="{{$g.TableID}}"{{with $.Sort}} data-sort-col="{{.Column}}" data-sort-dir="{{.Direction}}"{{end}}>
<thead><tr>{{range $i, $c := $.Columns}}<th data-table="{{$g.TableID}}" data-col="{{$i}}">{{$c.Header}}{{if $c.Arrow}}<span class="sort-arrow">{{$c.Arrow}}</span>{{end}}</th>{{end}}</tr></thead>
<tbody>
{{range $g.Rows}}<tr class="board-row{{if .Hidden}} hidden{{end}}" data-id="{{.ID}}" data-name="{{.Name}}" data-owner="{{.Owner}}" data-workspace="{{.Workspace}}" data-stage="{{.Stage}}" data-has-owner="{{.HasOwner}}">{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</div>
</section>
{{end}}

<script>
var ids = {{json .IDs}};

function byId(id) { return id ? document.getElementById(id) : null; }

function readFilter() {
  var q = byId(ids.search), o = byId(ids.owner), s = byId(ids.stage), h = byId(ids.hideUnassigned);
  return {
    query: q ? q.value : "",
    owner: o ? o.value : "",
    stage: s ? s.value : "",
    hideUnassigned: h ? h.checked : false
  };
}

function rowVisible(r, f) {
  var d = r.dataset;
  if (f.query) {
    var text = [d.name || "", d.owner || "", d.workspace || "", d.stage || ""].join(" ").toLowerCase();
    if (text.indexOf(f.query.toLowerCase()) === -1) return false;
  }
  if (f.owner && d.owner !== f.owner) return false;
  if (f.stage && d.stage !== f.stage) return false;
  if (f.hideUnassigned && d.hasOwner !== "true") return false;
  return true;
}

function applyFilters() {
  var f = readFilter();
  var rows = document.querySelectorAll("tr.board-row");
  var n = 0;
  for (var i = 0; i < rows.length; i++) {
    var show = rowVisible(rows[i], f);
    rows[i].classList.toggle("hidden", !show);
    if (show) n++;
  }
  var c = byId(ids.visibleCount);
  if (c) c.textContent = n;
  return n;
}

function parseNumber(s) {
  var t = s.replace(/[^0-9.\-]/g, "");
  return t === "" ? NaN : Number(t);
}

var collator = new Intl.Collator();

function compareCells(a, b) {
  var an = parseNumber(a), bn = parseNumber(b);
  if (!isNaN(an) && !isNaN(bn)) return an < bn ? -1 : (an > bn ? 1 : 0);
  return collator.compare(a.trim(), b.trim());
}

function cellText(tr, col) {
  var c = tr.cells[col];
  return c ? c.textContent.trim() : "";
}

function sortTable(tableId, col) {
  var table = byId(tableId);
  if (!table || !table.tBodies.length) return;
  var prevCol = table.getAttribute("data-sort-col");
  var prevDir = table.getAttribute("data-sort-dir");
  var dir = (prevCol !== null && Number(prevCol) === col && prevDir === "asc") ? "desc" : "asc";
  var sign = dir === "asc" ? 1 : -1;
  var tbody = table.tBodies[0];
  var rows = Array.prototype.slice.call(tbody.rows);
  rows.sort(function(a, b) { return sign * compareCells(cellText(a, col), cellText(b, col)); });
  rows.forEach(function(r) { tbody.appendChild(r); });
  table.setAttribute("data-sort-col", col);
  table.setAttribute("data-sort-dir", dir);
  table.querySelectorAll(".sort-arrow").forEach(function(e) { e.remove(); });
  var head = table.tHead && table.tHead.rows[0];
  var th = head && head.cells[col];
  if (th) {
    var arrow = document.createElement("span");
    arrow.className = "sort-arrow";
    arrow.textContent = dir === "asc" ? " ▲" : " ▼";
    th.appendChild(arrow);
  }
}

function toggleGroup(id) {
  var el = byId(id);
  if (el) el.classList.toggle("hidden");
}

function toggleList(listId, buttonId, total, limit) {
  var list = byId(listId), btn = byId(buttonId);
  if (!list || !btn) return;
  var expanded = btn.getAttribute("data-expanded") !== "true";
  var visible = expanded || !(limit > 0 && total > limit) ? total : limit;
  for (var i = 0; i < list.children.length; i++) {
    list.children[i].classList.toggle("hidden", i >= visible);
  }
  btn.setAttribute("data-expanded", expanded ? "true" : "false");
  btn.textContent = expanded ? "Show less" : "Show all (" + total + ")";
}

(function() {
  [ids.search, ids.owner, ids.stage, ids.hideUnassigned].forEach(function(id) {
    var el = byId(id);
    if (!el) return;
    el.addEventListener(el.tagName === "INPUT" && el.type === "text" ? "input" : "change", applyFilters);
  });
  document.querySelectorAll("th[data-table]").forEach(function(th) {
    th.addEventListener("click", function() { sortTable(th.dataset.table, Number(th.dataset.col)); });
  });
  document.querySelectorAll(".group-header[data-group]").forEach(function(h) {
    h.addEventListener("click", function() { toggleGroup(h.dataset.group); });
  });
  document.querySelectorAll(".list-toggle").forEach(function(b) {
    b.addEventListener("click", function() {
      toggleList(b.dataset.list, b.id, Number(b.dataset.total), Number(b.dataset.limit));
    });
  });
})();
</script>
</body>
</html>
{{define "summary"}}<div class="summary">
  <h3>{{.Title}}</h3>
  <ul id="{{.ID}}">
  {{range .Items}}<li{{if .Hidden}} class="hidden"{{end}}><span>{{.Label}}</span><span>{{.Count}}</span></li>
  {{end}}</ul>
  {{if .Toggle.Truncates}}<button type="button" class="list-toggle" id="{{.ButtonID}}" data-list="{{.ID}}" data-total="{{.Toggle.Total}}" data-limit="{{.Toggle.Limit}}" data-expanded="false">{{.Toggle.Label false}}</button>{{end}}
</div>{{end}}`
