// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

package output

// dashboardTemplate is the shared dashboard shell. It is executed with
// text/template using [[ ]] delimiters so the inline script can be written
// freely. The payload placeholder is inserted verbatim; the script must not
// contain backticks of its own.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="nerdash">
<meta name="nerdash-report-id" content="[[.ReportID | html]]">
<title>[[.Title | html]]</title>
<style>
:root {
  --bg: #f5f7fa; --fg: #1e293b; --card-bg: #fff; --border: #e2e8f0; --muted: #64748b;
  --side-bg: #1e293b; --side-fg: #e2e8f0; --side-btn: #334155; --accent: #3b82f6;
  --high: #22c55e; --medium: #f59e0b; --low: #ef4444;
  --loc: #059669; --loc-bg: #d1fae5; --org: #2563eb; --org-bg: #dbeafe;
  --per: #dc2626; --per-bg: #fee2e2; --misc: #7c3aed; --misc-bg: #ede9fe;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.6; }
.container { display: flex; height: 100vh; }
.sidebar { width: 280px; flex-shrink: 0; overflow-y: auto; padding: 20px; background: var(--side-bg); color: var(--side-fg); }
.sidebar h1 { font-size: 1.25rem; margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid var(--side-btn); }
.test-case-btn { display: flex; justify-content: space-between; width: 100%; padding: 12px 15px; margin-bottom: 8px; border: none; border-radius: 8px; background: var(--side-btn); color: var(--side-fg); text-align: left; cursor: pointer; font-size: .9rem; }
.test-case-btn:hover, .test-case-btn.active { background: var(--accent); color: #fff; }
.test-case-btn .count { padding: 0 8px; border-radius: 10px; background: rgba(255,255,255,.2); font-size: .75rem; }
.overall-stats { margin-top: 20px; padding: 20px; border-radius: 12px; background: linear-gradient(135deg, #1e293b, #334155); }
.overall-stats h3 { font-size: 1rem; margin-bottom: 15px; }
.stats-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; }
.stat-item { padding: 10px; border-radius: 8px; background: rgba(255,255,255,.1); }
.stat-label { font-size: .75rem; opacity: .8; }
.stat-value { font-size: 1.25rem; font-weight: 600; }
.main-content { flex: 1; overflow-y: auto; padding: 30px; }
.header { display: flex; align-items: center; justify-content: space-between; margin-bottom: 20px; }
.header h2 { font-size: 1.5rem; }
.export-btn { padding: 10px 20px; border: none; border-radius: 8px; background: var(--loc); color: #fff; cursor: pointer; font-size: .9rem; }
.export-btn:hover { background: #047857; }
.legend { display: flex; flex-wrap: wrap; gap: 20px; padding: 15px 20px; margin-bottom: 20px; border-radius: 12px; background: var(--card-bg); box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.legend-item { display: flex; align-items: center; gap: 8px; font-size: .9rem; }
.legend-color { width: 20px; height: 20px; border-radius: 4px; }
.legend-color.LOC, .entity-LOC { background: var(--loc-bg); border: 2px solid var(--loc); }
.legend-color.ORG, .entity-ORG { background: var(--org-bg); border: 2px solid var(--org); }
.legend-color.PER, .entity-PER { background: var(--per-bg); border: 2px solid var(--per); }
.legend-color.MISC, .entity-MISC { background: var(--misc-bg); border: 2px solid var(--misc); }
.controls { display: flex; flex-wrap: wrap; gap: 10px; margin-bottom: 20px; }
.search-input { flex: 1; min-width: 220px; padding: 12px 16px; border: 2px solid var(--border); border-radius: 8px; font-size: .95rem; }
.search-input:focus, .algo-select:focus { outline: none; border-color: var(--accent); }
.algo-select { padding: 10px 14px; border: 2px solid var(--border); border-radius: 8px; background: var(--card-bg); font-size: .9rem; }
.summary-cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 15px; margin-bottom: 20px; }
.summary-card { padding: 20px; border-radius: 12px; background: var(--card-bg); box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.summary-card .label { font-size: .8rem; color: var(--muted); text-transform: uppercase; letter-spacing: .5px; }
.summary-card .value { font-size: 1.75rem; font-weight: 700; }
.value.LOC { color: var(--loc); } .value.ORG { color: var(--org); } .value.PER { color: var(--per); } .value.MISC { color: var(--misc); }
.score-high { color: var(--high); } .score-medium { color: var(--medium); } .score-low { color: var(--low); }
.filter-bar { display: flex; flex-wrap: wrap; gap: 10px; margin-bottom: 20px; }
.filter-btn { padding: 8px 16px; border: 2px solid var(--border); border-radius: 20px; background: var(--card-bg); cursor: pointer; font-size: .85rem; }
.filter-btn:hover { border-color: var(--accent); }
.filter-btn.active { background: var(--accent); border-color: var(--accent); color: #fff; }
.phrase-card { padding: 20px; margin-bottom: 15px; border-radius: 12px; background: var(--card-bg); box-shadow: 0 1px 3px rgba(0,0,0,.1); }
.phrase-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 12px; }
.phrase-id { font-weight: 600; color: var(--muted); font-size: .85rem; }
.phrase-metrics { display: flex; gap: 15px; font-size: .85rem; color: var(--muted); }
.phrase-text { padding: 15px; margin-bottom: 15px; border-radius: 8px; background: #f8fafc; font-size: 1.05rem; line-height: 2; }
.phrase-card.collapsed .phrase-text, .phrase-card.collapsed .entity-list { display: none; }
.toggle-btn { padding: 5px; border: none; background: none; color: var(--muted); cursor: pointer; font-size: 1rem; }
.entity { position: relative; padding: 2px 4px; border-radius: 4px; cursor: help; }
.entity .tooltip { display: none; position: absolute; bottom: 100%; left: 0; z-index: 10; padding: 4px 8px; border-radius: 4px; background: var(--fg); color: #fff; font-size: .75rem; white-space: nowrap; }
.entity:hover > .tooltip { display: block; }
.entity-list-title { font-size: .8rem; font-weight: 600; color: var(--muted); text-transform: uppercase; margin-bottom: 8px; }
.entity-table { width: 100%; border-collapse: collapse; font-size: .875rem; }
.entity-table th, .entity-table td { padding: 8px 12px; text-align: left; border-bottom: 1px solid var(--border); }
.entity-table th { color: var(--muted); font-weight: 600; font-size: .75rem; text-transform: uppercase; }
.score-bar { width: 60px; height: 6px; margin-right: 8px; display: inline-block; border-radius: 3px; background: var(--border); overflow: hidden; vertical-align: middle; }
.score-fill { height: 100%; }
.score-fill.score-high { background: var(--high); } .score-fill.score-medium { background: var(--medium); } .score-fill.score-low { background: var(--low); }
.empty-state { padding: 60px 20px; text-align: center; color: var(--muted); }
.empty-state h3 { margin-bottom: 10px; }
footer { margin-top: 30px; font-size: .75rem; color: var(--muted); }
</style>
</head>
<body>
<div class="container">
  <aside class="sidebar">
    <h1>[[.Title | html]]</h1>
    <div id="test-case-list"></div>
    <div class="overall-stats" id="overall-stats"></div>
  </aside>
  <main class="main-content">
    <div class="header">
      <h2 id="current-test-case">Select a Test Case</h2>
      <button class="export-btn" id="export-btn" type="button">Export CSV</button>
    </div>
    <div class="legend">
      <div class="legend-item"><div class="legend-color LOC"></div><span>LOC (Location)</span></div>
      <div class="legend-item"><div class="legend-color ORG"></div><span>ORG (Organization)</span></div>
      <div class="legend-item"><div class="legend-color PER"></div><span>PER (Person)</span></div>
      <div class="legend-item"><div class="legend-color MISC"></div><span>MISC (Miscellaneous)</span></div>
    </div>
    <div class="controls">
      <input type="text" class="search-input" id="search-input" placeholder="Search phrases or entities...">
      <select class="algo-select" id="algo-select" hidden></select>
    </div>
    <div class="summary-cards" id="summary-cards"></div>
    <div class="filter-bar" id="filter-bar"></div>
    <div id="phrases-container"></div>
    <footer><span id="record-count">[[.Records]]</span> records &middot; generated [[.GeneratedAt | html]] &middot; report [[.ReportID | html]]</footer>
  </main>
</div>
<script>
[[.Placeholder]]

var LOW_CONFIDENCE = 0.7;
var TYPES = ['LOC', 'ORG', 'PER', 'MISC'];
var FILTERS = ['all'].concat(TYPES, ['low-confidence']);

// View state shared by the render functions.
var state = { grouped: null, algorithms: [], testCase: null, type: 'all', query: '', algorithm: '' };

function parseLines(text) {
  var out = [];
  text = text.trim();
  if (!text) return out;
  text.split('\n').forEach(function (line, i) {
    try {
      var rec = JSON.parse(line);
      if (rec !== null && typeof rec === 'object' && !Array.isArray(rec)) {
        out.push(rec);
      } else {
        console.warn('nerdash: line ' + (i + 1) + ' is not a JSON object');
      }
    } catch (e) {
      console.warn('nerdash: invalid JSON on line ' + (i + 1) + ': ' + e.message);
    }
  });
  return out;
}

function groupRecords(records) {
  var grouped = Object.create(null);
  records.forEach(function (r) {
    var tc = grouped[r.Test_Case] || (grouped[r.Test_Case] = Object.create(null));
    var p = tc[r.Phrase_ID];
    if (!p) {
      p = tc[r.Phrase_ID] = { phrase: r.Phrase == null ? '' : String(r.Phrase), entities: [] };
    }
    p.entities.push(r);
  });
  return grouped;
}

function distinctAlgorithms(records) {
  var seen = Object.create(null);
  records.forEach(function (r) {
    if (typeof r.Algorithm === 'string' && r.Algorithm !== '') seen[r.Algorithm] = true;
  });
  return Object.keys(seen).sort();
}

function esc(s) {
  return String(s == null ? '' : s)
    .replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;')
    .replace(/"/g, '&#34;').replace(/'/g, '&#39;');
}

function isEntity(e) { return e.Entity_Group !== 'N/A'; }

function scoreOf(e) {
  var s = String(e.Score == null ? '' : e.Score).trim();
  var n = Number(s);
  return s !== '' && isFinite(n) ? n : NaN;
}

function isLow(e) {
  var s = scoreOf(e);
  return isEntity(e) && !isNaN(s) && s < LOW_CONFIDENCE;
}

function meanScore(entities) {
  var sum = 0, n = 0;
  entities.forEach(function (e) {
    var s = scoreOf(e);
    if (isEntity(e) && !isNaN(s)) { sum += s; n++; }
  });
  return n > 0 ? (sum / n).toFixed(4) : 'N/A';
}

function scoreClass(score) {
  var s = typeof score === 'number' ? score : Number(score);
  if (score === 'N/A' || isNaN(s)) return '';
  if (s >= 0.85) return 'score-high';
  if (s >= LOW_CONFIDENCE) return 'score-medium';
  return 'score-low';
}

function formatTestCaseName(name) {
  return String(name).split('_').map(function (w) {
    return w.charAt(0).toUpperCase() + w.slice(1);
  }).join(' ');
}

function testCaseStats(tcData) {
  var s = { phrases: 0, entities: 0, counts: { LOC: 0, ORG: 0, PER: 0, MISC: 0 }, low: 0, mean: 'N/A' };
  var all = [];
  Object.keys(tcData).forEach(function (id) {
    s.phrases++;
    tcData[id].entities.forEach(function (e) {
      if (!isEntity(e)) return;
      s.entities++;
      s.counts[e.Entity_Group] = (s.counts[e.Entity_Group] || 0) + 1;
      if (isLow(e)) s.low++;
      all.push(e);
    });
  });
  s.mean = meanScore(all);
  return s;
}

function keepType(e, type) {
  if (type === 'all') return true;
  if (type === 'low-confidence') return isLow(e);
  return e.Entity_Group === type;
}

function matchesQuery(phrase, recs, q) {
  if (phrase.toLowerCase().indexOf(q) !== -1) return true;
  return recs.some(function (e) {
    return String(e.Word == null ? '' : e.Word).toLowerCase().indexOf(q) !== -1 ||
      String(e.Entity_Group).toLowerCase().indexOf(q) !== -1;
  });
}

// visibleRows applies the search, type and algorithm filters conjunctively.
// A phrase with nothing to display is hidden unless the type filter is "all".
function visibleRows(tcData, st) {
  var q = st.query.toLowerCase();
  var rows = [];
  Object.keys(tcData).forEach(function (id) {
    var p = tcData[id];
    var recs = p.entities;
    if (st.algorithm) {
      recs = recs.filter(function (e) { return e.Algorithm === st.algorithm; });
      if (recs.length === 0) return;
    }
    if (q && !matchesQuery(p.phrase, recs, q)) return;
    var display = recs.filter(function (e) { return isEntity(e) && keepType(e, st.type); });
    if (st.type !== 'all' && display.length === 0) return;
    rows.push({ id: id, phrase: p.phrase, records: recs, entities: display });
  });
  return rows;
}

function cmp(a, b) { return a < b ? -1 : (a > b ? 1 : 0); }

function compareSpans(a, b) {
  return (b.Start - a.Start) || (a.End - b.End) ||
    cmp(String(a.Entity_Group), String(b.Entity_Group)) ||
    cmp(String(a.Word), String(b.Word)) || cmp(String(a.Score), String(b.Score));
}

function crosses(a, b) {
  return (a.Start < b.Start && b.Start < a.End && a.End < b.End) ||
    (b.Start < a.Start && a.Start < b.End && b.End < a.End);
}

// highlight places spans in descending Start order. Insertions are keyed by
// original code point offsets, so no insertion moves another.
function highlight(text, entities) {
  var chars = Array.from(text);
  var spans = entities.filter(function (e) {
    return isEntity(e) && Number.isInteger(e.Start) && Number.isInteger(e.End) &&
      e.Start >= 0 && e.Start < e.End && e.End <= chars.length;
  });
  spans.sort(compareSpans);
  var opens = {}, closes = {}, placed = [];
  spans.forEach(function (e) {
    if (placed.some(function (p) { return crosses(e, p); })) return;
    placed.push(e);
    (opens[e.Start] = opens[e.Start] || []).unshift('<span class="entity entity-' + esc(e.Entity_Group) + '">');
    (closes[e.End] = closes[e.End] || []).push('<span class="tooltip">' + esc(e.Entity_Group) + ': ' + esc(e.Score) + '</span></span>');
  });
  var out = '', seg = 0;
  for (var i = 0; i <= chars.length; i++) {
    var c = closes[i] || [], o = opens[i] || [];
    if (c.length === 0 && o.length === 0) continue;
    if (seg < i) out += esc(chars.slice(seg, i).join(''));
    seg = i;
    out += c.join('') + o.join('');
  }
  if (seg < chars.length) out += esc(chars.slice(seg).join(''));
  return out;
}

function csvFileName(name) { return String(name).replace(/[\/\\]/g, '_') + '_entities.csv'; }

function csvQuote(s) { return '"' + String(s == null ? '' : s).replace(/"/g, '""') + '"'; }

function buildCSV(tcData) {
  var csv = 'Phrase_ID,Phrase,Entity,Type,Score,Start,End\n';
  Object.keys(tcData).forEach(function (id) {
    var p = tcData[id];
    p.entities.forEach(function (e) {
      csv += [id, csvQuote(p.phrase), csvQuote(e.Word), e.Entity_Group, e.Score, e.Start, e.End].join(',') + '\n';
    });
  });
  return csv;
}

function card(label, value, cls) {
  return '<div class="summary-card"><div class="label">' + esc(label) + '</div>' +
    '<div class="value ' + (cls || '') + '">' + esc(value) + '</div></div>';
}

function renderTestCaseList() {
  var list = document.getElementById('test-case-list');
  list.innerHTML = '';
  Object.keys(state.grouped).forEach(function (name) {
    var btn = document.createElement('button');
    btn.type = 'button';
    btn.className = 'test-case-btn';
    btn.dataset.testCase = name;
    btn.innerHTML = '<span>' + esc(formatTestCaseName(name)) + '</span>' +
      '<span class="count">' + Object.keys(state.grouped[name]).length + '</span>';
    btn.addEventListener('click', function () { selectTestCase(name); });
    list.appendChild(btn);
  });
}

function renderOverallStats() {
  var phrases = 0, all = [];
  Object.keys(state.grouped).forEach(function (name) {
    var tc = state.grouped[name];
    Object.keys(tc).forEach(function (id) {
      phrases++;
      tc[id].entities.forEach(function (e) { if (isEntity(e)) all.push(e); });
    });
  });
  var item = function (label, value) {
    return '<div class="stat-item"><div class="stat-label">' + label + '</div><div class="stat-value">' + esc(value) + '</div></div>';
  };
  document.getElementById('overall-stats').innerHTML = '<h3>Overall Statistics</h3><div class="stats-grid">' +
    item('Test Cases', Object.keys(state.grouped).length) + item('Total Phrases', phrases) +
    item('Total Entities', all.length) + item('Avg Confidence', meanScore(all)) + '</div>';
}

function renderAlgorithmSelect() {
  var sel = document.getElementById('algo-select');
  if (state.algorithms.length === 0) { sel.hidden = true; return; }
  sel.hidden = false;
  sel.innerHTML = '<option value="">All algorithms</option>' + state.algorithms.map(function (a) {
    return '<option value="' + esc(a) + '">' + esc(a) + '</option>';
  }).join('');
  sel.value = state.algorithm;
}

function renderSummaryCards() {
  var s = testCaseStats(state.grouped[state.testCase]);
  document.getElementById('summary-cards').innerHTML =
    card('Total Phrases', s.phrases) + card('Total Entities', s.entities) +
    card('Avg Confidence', s.mean, scoreClass(s.mean)) + card('Low Confidence', s.low, 'score-low') +
    TYPES.map(function (t) { return card(t + ' Entities', s.counts[t] || 0, t); }).join('');
}

function renderFilterBar() {
  var bar = document.getElementById('filter-bar');
  bar.innerHTML = '';
  FILTERS.forEach(function (f) {
    var btn = document.createElement('button');
    btn.type = 'button';
    btn.className = 'filter-btn' + (state.type === f ? ' active' : '');
    btn.textContent = f === 'all' ? 'All Entities' : (f === 'low-confidence' ? 'Low Confidence (<' + LOW_CONFIDENCE + ')' : f);
    btn.addEventListener('click', function () { state.type = f; renderFilterBar(); renderPhrases(); });
    bar.appendChild(btn);
  });
}

function renderEntityTable(entities) {
  if (entities.length === 0) return '<p style="color: #94a3b8; font-size: .85rem;">No entities detected</p>';
  return '<table class="entity-table"><thead><tr><th>Entity</th><th>Type</th><th>Confidence</th><th>Position</th></tr></thead><tbody>' +
    entities.map(function (e) {
      var s = scoreOf(e);
      var width = isNaN(s) ? 0 : Math.max(0, Math.min(1, s)) * 100;
      return '<tr><td><strong>' + esc(e.Word) + '</strong></td>' +
        '<td><span class="entity entity-' + esc(e.Entity_Group) + '">' + esc(e.Entity_Group) + '</span></td>' +
        '<td><span class="score-bar"><span class="score-fill ' + scoreClass(s) + '" style="display:block;width:' + width + '%"></span></span>' + esc(e.Score) + '</td>' +
        '<td>' + esc(e.Start) + '-' + esc(e.End) + '</td></tr>';
    }).join('') + '</tbody></table>';
}

function renderPhrases() {
  var container = document.getElementById('phrases-container');
  container.innerHTML = '';
  var rows = visibleRows(state.grouped[state.testCase], state);
  rows.forEach(function (row) {
    var valid = row.records.filter(isEntity);
    var avg = meanScore(valid);
    var el = document.createElement('div');
    el.className = 'phrase-card';
    el.innerHTML = '<div class="phrase-header"><span class="phrase-id">' +
      '<button class="toggle-btn" type="button">&#9660;</button> Phrase #' + esc(row.id) + '</span>' +
      '<div class="phrase-metrics"><span>' + valid.length + ' entities</span>' +
      '<span>Avg: <span class="' + scoreClass(avg) + '">' + esc(avg) + '</span></span></div></div>' +
      '<div class="phrase-text">' + highlight(row.phrase, row.entities) + '</div>' +
      '<div class="entity-list"><div class="entity-list-title">Detected Entities</div>' + renderEntityTable(row.entities) + '</div>';
    el.querySelector('.toggle-btn').addEventListener('click', function (ev) {
      el.classList.toggle('collapsed');
      ev.currentTarget.innerHTML = el.classList.contains('collapsed') ? '&#9654;' : '&#9660;';
    });
    container.appendChild(el);
  });
  if (rows.length === 0) {
    container.innerHTML = '<div class="empty-state"><h3>No matches found</h3><p>No phrases match the current filter criteria.</p></div>';
  }
}

function selectTestCase(name) {
  state.testCase = name;
  state.type = 'all';
  state.query = '';
  document.getElementById('search-input').value = '';
  document.querySelectorAll('.test-case-btn').forEach(function (btn) {
    btn.classList.toggle('active', btn.dataset.testCase === name);
  });
  document.getElementById('current-test-case').textContent = formatTestCaseName(name);
  renderSummaryCards();
  renderFilterBar();
  renderPhrases();
}

function exportCSV() {
  if (state.testCase === null) return;
  var blob = new Blob([buildCSV(state.grouped[state.testCase])], { type: 'text/csv' });
  var url = URL.createObjectURL(blob);
  var a = document.createElement('a');
  a.href = url;
  a.download = csvFileName(state.testCase);
  a.click();
  URL.revokeObjectURL(url);
}

function init() {
  DATA = parseLines(RAW_JSON);
  state.grouped = groupRecords(DATA);
  state.algorithms = distinctAlgorithms(DATA);
  document.getElementById('record-count').textContent = DATA.length;

  document.getElementById('search-input').addEventListener('input', function (ev) {
    state.query = ev.target.value;
    if (state.testCase !== null) renderPhrases();
  });
  document.getElementById('algo-select').addEventListener('change', function (ev) {
    state.algorithm = ev.target.value;
    if (state.testCase !== null) renderPhrases();
  });
  document.getElementById('export-btn').addEventListener('click', exportCSV);

  renderTestCaseList();
  renderOverallStats();
  renderAlgorithmSelect();

  var first = Object.keys(state.grouped)[0];
  if (first !== undefined) {
    selectTestCase(first);
  } else {
    document.getElementById('phrases-container').innerHTML =
      '<div class="empty-state"><h3>No records</h3><p>The embedded data contains no entity records.</p></div>';
  }
}

init();
</script>
</body>
</html>
`
