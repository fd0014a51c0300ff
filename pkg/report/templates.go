package report

// The layouts mirror the Bootstrap 5 tab markup the lab nbconvert template
// expects, with CSS overrides that keep JupyterLab's stylesheet from
// breaking the tab navigation.

const sharedTabCSS = `
    <style>
        .notebook-content-wrapper {
            all: initial;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
            line-height: 1.5;
            color: #24292f;
        }

        .notebook-content-wrapper * {
            box-sizing: border-box;
            max-width: 100% !important;
        }

        .notebook-content-wrapper .jp-Cell,
        .notebook-content-wrapper .jp-CodeCell,
        .notebook-content-wrapper .jp-MarkdownCell {
            margin: 0 !important;
            padding: 10px !important;
            border: none !important;
        }

        .notebook-content-wrapper .jp-OutputArea {
            margin: 10px 0 !important;
        }

        .notebook-content-wrapper .jp-OutputArea-output {
            background: transparent !important;
        }

        .nav-tabs .nav-link {
            background-color: #f8f9fa !important;
            color: #495057 !important;
            border: 1px solid #dee2e6 !important;
            font-weight: 500 !important;
            font-size: 1.1em !important;
            z-index: 1000 !important;
        }

        .nav-tabs .nav-link.active {
            background-color: #fff !important;
            color: #0d6efd !important;
            border-bottom-color: transparent !important;
            z-index: 1001 !important;
        }

        .nav-tabs .nav-link:hover {
            background-color: #e9ecef !important;
            border-color: #dee2e6 !important;
        }

        .nav-pills .nav-link {
            background-color: #f8f9fa !important;
            color: #495057 !important;
            margin: 0 2px !important;
            border-radius: 0.375rem !important;
            z-index: 1000 !important;
        }

        .nav-pills .nav-link.active {
            background-color: #0d6efd !important;
            color: white !important;
            z-index: 1001 !important;
        }

        .nested-tabs-container {
            margin-top: 20px !important;
        }

        .nested-tabs-container .nav-pills .nav-link {
            font-size: 0.95em !important;
        }

        body {
            background-color: #f8f9fa !important;
            overflow-x: hidden !important;
        }

        .container {
            background-color: white !important;
            border-radius: 0.5rem !important;
            box-shadow: 0 0.125rem 0.25rem rgba(0, 0, 0, 0.075) !important;
            padding: 2rem !important;
            margin-top: 2rem !important;
            margin-bottom: 2rem !important;
            max-width: 100% !important;
        }

        .tab-content {
            background-color: white !important;
            border: 1px solid #dee2e6 !important;
            border-radius: 0.375rem !important;
            padding: 20px !important;
            margin-top: 10px !important;
            overflow-x: auto !important;
        }

        .notebook-content-wrapper table {
            width: 100% !important;
            overflow-x: auto !important;
            display: block !important;
        }

        .notebook-content-wrapper img {
            max-width: 100% !important;
            height: auto !important;
        }

        .notebook-content-wrapper pre,
        .notebook-content-wrapper code {
            white-space: pre-wrap !important;
            word-break: break-word !important;
        }

        .rtl-text {
            display: inline-block;
            text-align: right;
        }

        .tab-pane {
            display: none !important;
        }

        .tab-pane.active {
            display: block !important;
        }

        .tab-pane.fade {
            transition: opacity 0.15s linear !important;
        }

        .tab-pane.fade:not(.show) {
            opacity: 0 !important;
        }

        .tab-pane.fade.show {
            opacity: 1 !important;
        }
    </style>
`

const tabInitScript = `
    <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/js/bootstrap.bundle.min.js"></script>
    <script>
    document.addEventListener('DOMContentLoaded', function() {
        var tabs = document.querySelectorAll('[data-bs-toggle="tab"]');
        tabs.forEach(function(tab) {
            new bootstrap.Tab(tab);
        });
    });
    </script>
`

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
    <title>{{.Title}}</title>
` + sharedTabCSS + `</head>
<body>
    <div class="container">
        <div class="text-center mb-4">
            <h1 class="display-4">{{.Title}}</h1>
            <p class="text-muted">Generated on: {{.GeneratedAt}}</p>
        </div>
`

const pageFoot = `
    </div>
` + tabInitScript + `</body>
</html>
`

const singleTemplate = pageHead + `
        <div class="tab-content">
            <div class="notebook-content-wrapper">{{.Single.Content}}</div>
        </div>
` + pageFoot

const flatTemplate = pageHead + `
        <ul class="nav nav-tabs nav-justified mb-3" id="mainTab" role="tablist">
{{- range .Tabs}}
            <li class="nav-item"><a class="nav-link{{if .Active}} active{{end}}" id="{{.ID}}-link" data-bs-toggle="tab" href="#{{.ID}}" role="tab" aria-controls="{{.ID}}" aria-selected="{{if .Active}}true{{else}}false{{end}}">{{.Name}}</a></li>
{{- end}}
        </ul>
        <div class="tab-content" id="mainTabContent">
{{- range .Tabs}}
            <div class="tab-pane fade{{if .Active}} show active{{end}}" id="{{.ID}}" role="tabpanel" aria-labelledby="{{.ID}}-link"><div class="notebook-content-wrapper">{{.Content}}</div></div>
{{- end}}
        </div>
` + pageFoot

const nestedTemplate = pageHead + `
        <div class="main-tabs">
            <ul class="nav nav-tabs nav-justified mb-3" id="mainTab" role="tablist">
{{- range .Topics}}
                <li class="nav-item"><a class="nav-link{{if .Active}} active{{end}}" id="{{.ID}}-tab" data-bs-toggle="tab" href="#{{.ID}}" role="tab" aria-controls="{{.ID}}" aria-selected="{{if .Active}}true{{else}}false{{end}}">{{.Name}}</a></li>
{{- end}}
            </ul>
            <div class="tab-content" id="mainTabContent">
{{- range .Topics}}
                <div class="tab-pane fade{{if .Active}} show active{{end}}" id="{{.ID}}" role="tabpanel" aria-labelledby="{{.ID}}-tab">
                    <div class="nested-tabs-container">
                        <ul class="nav nav-pills nav-justified mb-3" id="{{.ID}}-subtabs" role="tablist">
{{- range .Subs}}
                            <li class="nav-item"><a class="nav-link{{if .Active}} active{{end}}" id="{{.ID}}-tab" data-bs-toggle="tab" href="#{{.ID}}" role="tab" aria-controls="{{.ID}}" aria-selected="{{if .Active}}true{{else}}false{{end}}">{{.Name}}</a></li>
{{- end}}
                        </ul>
                        <div class="tab-content" id="{{.ID}}-subtab-content">
{{- range .Subs}}
                            <div class="tab-pane fade{{if .Active}} show active{{end}}" id="{{.ID}}" role="tabpanel" aria-labelledby="{{.ID}}-tab"><div class="notebook-content-wrapper">{{.Content}}</div></div>
{{- end}}
                        </div>
                    </div>
                </div>
{{- end}}
            </div>
        </div>
` + pageFoot
