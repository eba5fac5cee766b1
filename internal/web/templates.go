package web

import (
	"html/template"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

// PageData holds the data passed to the page template.
type PageData struct {
	ProjectName string
	Languages   []comparison.Language
	Source      string
	Target      string
	ActiveTab   string
	Comparison  *ComparisonView // nil renders the "not available yet" panel
	LiveReload  bool
	Static      bool   // static build: selection navigates between pre-rendered pages
	BasePath    string // relative prefix for asset links
}

// NewPageTemplate parses the comparison page template.
func NewPageTemplate() (*template.Template, error) {
	return template.New("page").Parse(pageTemplate)
}

// pageTemplate is the Go html/template for the comparison page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Comparison}}{{.Comparison.SourceName}} to {{.Comparison.TargetName}} — {{end}}{{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-static="{{if .Static}}1{{end}}" data-livereload="{{if .LiveReload}}1{{end}}" data-basepath="{{.BasePath}}" data-source="{{.Source}}" data-target="{{.Target}}" data-tab="{{.ActiveTab}}">
  <header class="topbar">
    <h1 class="brand"><a href="{{if .Static}}{{.BasePath}}index.html{{else}}/{{end}}">{{.ProjectName}}</a></h1>
    <div class="selectors">
      <label>From
        <select id="source-select">
          {{range .Languages}}<option value="{{.ID}}"{{if eq .ID $.Source}} selected{{end}}>{{.Name}}</option>{{end}}
        </select>
      </label>
      <button id="swap-button" type="button" title="Swap languages">&#8646;</button>
      <label>To
        <select id="target-select">
          {{range .Languages}}<option value="{{.ID}}"{{if eq .ID $.Target}} selected{{end}}>{{.Name}}</option>{{end}}
        </select>
      </label>
      <button id="share-button" type="button" title="Copy share link">Share</button>
    </div>
  </header>

  <main class="content">
  {{if .Comparison}}
    <nav class="tabs" role="tablist">
      <button class="tab{{if eq .ActiveTab "syntax"}} active{{end}}" data-tab="syntax">Syntax</button>
      <button class="tab{{if eq .ActiveTab "pitfalls"}} active{{end}}" data-tab="pitfalls">Pitfalls</button>
      <button class="tab{{if eq .ActiveTab "differences"}} active{{end}}" data-tab="differences">Key Differences</button>
      {{if .Comparison.Frameworks}}<button class="tab{{if eq .ActiveTab "frameworks"}} active{{end}}" data-tab="frameworks">Frameworks</button>{{end}}
    </nav>

    <section class="panel{{if eq .ActiveTab "syntax"}} active{{end}}" data-panel="syntax">
      {{range .Comparison.Syntax}}
      <article class="example">
        <h2>{{.Topic}}</h2>
        {{if .Description}}<div class="prose">{{.Description}}</div>{{end}}
        <div class="side-by-side">
          <div class="pane">
            <div class="pane-label">{{$.Comparison.SourceName}}</div>
            {{.SourceCode}}
          </div>
          <div class="pane">
            <div class="pane-label">{{$.Comparison.TargetName}}</div>
            {{.TargetCode}}
          </div>
        </div>
      </article>
      {{end}}
    </section>

    <section class="panel{{if eq .ActiveTab "pitfalls"}} active{{end}}" data-panel="pitfalls">
      {{range .Comparison.Pitfalls}}
      <article class="example pitfall">
        <h2>{{.Title}}</h2>
        <div class="prose">{{.Description}}</div>
        {{if or .HasSource .HasTarget}}
        <div class="side-by-side">
          <div class="pane">
            <div class="pane-label">{{$.Comparison.SourceName}}</div>
            {{if .HasSource}}{{.SourceExample}}{{else}}<p class="absent">No example</p>{{end}}
          </div>
          <div class="pane">
            <div class="pane-label">{{$.Comparison.TargetName}}</div>
            {{if .HasTarget}}{{.TargetExample}}{{else}}<p class="absent">No example</p>{{end}}
          </div>
        </div>
        {{end}}
        <div class="correct"><strong>Correct approach</strong><div class="prose">{{.CorrectApproach}}</div></div>
      </article>
      {{end}}
    </section>

    <section class="panel{{if eq .ActiveTab "differences"}} active{{end}}" data-panel="differences">
      {{range .Comparison.Differences}}
      <article class="example difference">
        <h2>{{.Topic}}</h2>
        <div class="prose">{{.Description}}</div>
        <div class="side-by-side">
          <div class="pane">
            <div class="pane-label">{{$.Comparison.SourceName}}</div>
            <div class="prose">{{.SourceApproach}}</div>
          </div>
          <div class="pane">
            <div class="pane-label">{{$.Comparison.TargetName}}</div>
            <div class="prose">{{.TargetApproach}}</div>
          </div>
        </div>
      </article>
      {{end}}
    </section>

    {{if .Comparison.Frameworks}}
    <section class="panel{{if eq .ActiveTab "frameworks"}} active{{end}}" data-panel="frameworks">
      {{range .Comparison.Frameworks}}
      <article class="example framework">
        <h2>{{.Category}}</h2>
        <div class="side-by-side">
          <div class="pane">
            <div class="pane-label">{{.Source.Name}} ({{$.Comparison.SourceName}})</div>
            <h3>Setup</h3>{{.Source.SetupCode}}
            <h3>Basic example</h3>{{.Source.BasicExample}}
            <h3>Strengths</h3><ul>{{range .Source.Strengths}}<li>{{.}}</li>{{end}}</ul>
            <h3>Ecosystem</h3><ul class="tags">{{range .Source.Ecosystem}}<li>{{.}}</li>{{end}}</ul>
          </div>
          <div class="pane">
            <div class="pane-label">{{.Target.Name}} ({{$.Comparison.TargetName}})</div>
            <h3>Setup</h3>{{.Target.SetupCode}}
            <h3>Basic example</h3>{{.Target.BasicExample}}
            <h3>Strengths</h3><ul>{{range .Target.Strengths}}<li>{{.}}</li>{{end}}</ul>
            <h3>Ecosystem</h3><ul class="tags">{{range .Target.Ecosystem}}<li>{{.}}</li>{{end}}</ul>
          </div>
        </div>
        {{if .MigrationTips}}
        <div class="tips"><strong>Migration tips</strong><ul>{{range .MigrationTips}}<li>{{.}}</li>{{end}}</ul></div>
        {{end}}
        {{if .CommonPitfalls}}
        <div class="tips pitfall-tips"><strong>Watch out for</strong><ul>{{range .CommonPitfalls}}<li>{{.}}</li>{{end}}</ul></div>
        {{end}}
      </article>
      {{end}}
    </section>
    {{end}}
  {{else}}
    <section class="not-found">
      <h2>Not available yet</h2>
      <p>There is no comparison for this language pair yet. Pick another combination from the dropdowns above.</p>
    </section>
  {{end}}
  </main>

  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet served alongside the page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #57606a;
  --border: #d0d7de;
  --accent: #0969da;
  --panel-bg: #f6f8fa;
  --warn-bg: #fff8c5;
  --ok-bg: #dafbe1;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  background: var(--bg);
  color: var(--fg);
  line-height: 1.5;
}

.topbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  flex-wrap: wrap;
  gap: 12px;
  padding: 12px 24px;
  border-bottom: 1px solid var(--border);
}

.brand { font-size: 18px; margin: 0; }
.brand a { color: var(--fg); text-decoration: none; }

.selectors { display: flex; align-items: center; gap: 10px; flex-wrap: wrap; }
.selectors label { font-size: 13px; color: var(--muted); display: flex; align-items: center; gap: 6px; }
.selectors select {
  font-size: 14px;
  padding: 6px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
}
.selectors button {
  font-size: 14px;
  padding: 6px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--panel-bg);
  cursor: pointer;
}
.selectors button:hover { border-color: var(--accent); color: var(--accent); }

.content { max-width: 1100px; margin: 0 auto; padding: 20px 24px 60px; }

.tabs { display: flex; gap: 4px; border-bottom: 1px solid var(--border); margin-bottom: 20px; }
.tab {
  border: none;
  background: none;
  font-size: 14px;
  padding: 10px 14px;
  cursor: pointer;
  color: var(--muted);
  border-bottom: 2px solid transparent;
}
.tab:hover { color: var(--fg); }
.tab.active { color: var(--accent); border-bottom-color: var(--accent); font-weight: 600; }

.panel { display: none; }
.panel.active { display: block; }

.example { margin-bottom: 32px; }
.example h2 { font-size: 17px; margin: 0 0 8px; }
.example h3 { font-size: 13px; text-transform: uppercase; letter-spacing: 0.03em; color: var(--muted); margin: 14px 0 6px; }

.side-by-side {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 16px;
}
@media (max-width: 760px) {
  .side-by-side { grid-template-columns: 1fr; }
}

.pane {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 12px;
  background: var(--panel-bg);
  overflow-x: auto;
}
.pane-label {
  font-size: 12px;
  font-weight: 600;
  text-transform: uppercase;
  letter-spacing: 0.04em;
  color: var(--muted);
  margin-bottom: 8px;
}
.pane pre { margin: 0; padding: 8px; border-radius: 6px; overflow-x: auto; font-size: 13px; }

.prose { color: var(--fg); font-size: 14px; }
.prose p { margin: 6px 0; }
.absent { color: var(--muted); font-style: italic; font-size: 13px; }

.correct {
  margin-top: 12px;
  padding: 10px 14px;
  background: var(--ok-bg);
  border-radius: 8px;
  font-size: 14px;
}
.tips {
  margin-top: 12px;
  padding: 10px 14px;
  background: var(--panel-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  font-size: 14px;
}
.pitfall-tips { background: var(--warn-bg); }
.tips ul { margin: 6px 0 0; padding-left: 20px; }

.tags { list-style: none; padding: 0; margin: 0; display: flex; flex-wrap: wrap; gap: 6px; }
.tags li {
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 2px 10px;
  font-size: 12px;
}

.not-found { text-align: center; padding: 80px 0; color: var(--muted); }
.not-found h2 { color: var(--fg); }
`

// jsContent handles selection state on the client: URL params,
// localStorage persistence, tab switching, share links, and the dev
// live-reload socket. The resolver itself is server-side; this script
// only moves identifiers around.
const jsContent = `(function () {
  var body = document.body;
  var isStatic = body.dataset.static === "1";
  var basePath = body.dataset.basepath || "";

  var STORE = { source: "langhub.source", target: "langhub.target", tab: "langhub.tab" };

  function save(source, target, tab) {
    try {
      localStorage.setItem(STORE.source, source);
      localStorage.setItem(STORE.target, target);
      if (tab) localStorage.setItem(STORE.tab, tab);
    } catch (e) { /* storage disabled */ }
  }

  function navigate(source, target, tab) {
    save(source, target, tab);
    if (isStatic) {
      window.location.href = basePath + "pairs/" + source + "-to-" + target + ".html" + (tab ? "#" + tab : "");
    } else {
      var params = new URLSearchParams();
      params.set("source", source);
      params.set("target", target);
      if (tab) params.set("tab", tab);
      window.location.search = params.toString();
    }
  }

  var sourceSel = document.getElementById("source-select");
  var targetSel = document.getElementById("target-select");
  var swapBtn = document.getElementById("swap-button");
  var shareBtn = document.getElementById("share-button");

  function currentTab() {
    var active = document.querySelector(".tab.active");
    return active ? active.dataset.tab : body.dataset.tab;
  }

  if (sourceSel && targetSel) {
    sourceSel.addEventListener("change", function () {
      navigate(sourceSel.value, targetSel.value, currentTab());
    });
    targetSel.addEventListener("change", function () {
      navigate(sourceSel.value, targetSel.value, currentTab());
    });
  }

  if (swapBtn) {
    swapBtn.addEventListener("click", function () {
      navigate(targetSel.value, sourceSel.value, currentTab());
    });
  }

  if (shareBtn) {
    shareBtn.addEventListener("click", function () {
      var url = window.location.href;
      if (navigator.clipboard) {
        navigator.clipboard.writeText(url).then(function () {
          shareBtn.textContent = "Copied!";
          setTimeout(function () { shareBtn.textContent = "Share"; }, 1500);
        });
      } else {
        window.prompt("Share this comparison:", url);
      }
    });
  }

  // Tab switching without a round trip; selection is mirrored into the
  // URL and localStorage.
  document.querySelectorAll(".tab").forEach(function (btn) {
    btn.addEventListener("click", function () {
      document.querySelectorAll(".tab").forEach(function (b) { b.classList.remove("active"); });
      document.querySelectorAll(".panel").forEach(function (p) { p.classList.remove("active"); });
      btn.classList.add("active");
      var panel = document.querySelector('.panel[data-panel="' + btn.dataset.tab + '"]');
      if (panel) panel.classList.add("active");
      try { localStorage.setItem(STORE.tab, btn.dataset.tab); } catch (e) {}
      if (!isStatic) {
        var params = new URLSearchParams(window.location.search);
        params.set("tab", btn.dataset.tab);
        history.replaceState(null, "", "?" + params.toString());
      } else {
        history.replaceState(null, "", "#" + btn.dataset.tab);
      }
    });
  });

  // Restore a stored selection when the URL carries none.
  if (!isStatic) {
    var params = new URLSearchParams(window.location.search);
    if (!params.has("source") && !params.has("target")) {
      try {
        var s = localStorage.getItem(STORE.source);
        var t = localStorage.getItem(STORE.target);
        var tab = localStorage.getItem(STORE.tab);
        if (s && t && (s !== body.dataset.source || t !== body.dataset.target)) {
          navigate(s, t, tab);
          return;
        }
      } catch (e) { /* storage disabled */ }
    }
    save(body.dataset.source, body.dataset.target, currentTab());
  } else {
    // Static pages restore the tab from the fragment.
    var hash = window.location.hash.replace("#", "");
    if (hash) {
      var btn = document.querySelector('.tab[data-tab="' + hash + '"]');
      if (btn) btn.click();
    }
  }

  // Dev live reload.
  if (body.dataset.livereload === "1" && "WebSocket" in window) {
    var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + window.location.host + "/ws/reload");
    ws.onmessage = function () { window.location.reload(); };
  }
})();
`
