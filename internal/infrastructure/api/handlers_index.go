package api

import "net/http"

// HandleIndex serves the single-page UI.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Veo Video Generator</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  label { display: block; margin-top: 1rem; font-weight: bold; }
  textarea, input, select { width: 100%; padding: 0.4rem; margin-top: 0.25rem; box-sizing: border-box; }
  button { margin-top: 1rem; padding: 0.5rem 1.5rem; }
  #progressBar { width: 100%; height: 1.2rem; background: #eee; margin-top: 1rem; display: none; }
  #progressFill { height: 100%; width: 0; background: #4a8; transition: width 0.3s; }
  #error { color: #c00; margin-top: 1rem; white-space: pre-wrap; }
  #analysis { margin-top: 1rem; white-space: pre-wrap; background: #f7f7f7; padding: 1rem; }
  video { width: 100%; margin-top: 1rem; }
</style>
</head>
<body>
<h1>Veo Video Generator</h1>

<label>Gemini API key</label>
<input type="password" id="apiKey" placeholder="Paste your API key">
<button id="saveKeyBtn">Save key</button>

<label>Prompt</label>
<textarea id="prompt" rows="4" placeholder="a cat playing piano"></textarea>

<label>Reference image (optional)</label>
<input type="file" id="image" accept="image/*">

<label>Aspect ratio</label>
<select id="aspectRatio"><option>16:9</option><option>9:16</option></select>

<label>Resolution</label>
<select id="resolution"><option>720p</option><option>1080p</option></select>

<label>Duration (seconds)</label>
<input type="number" id="durationSeconds" value="8" min="1">

<button id="generateBtn">Generate video</button>
<button id="analyzeBtn">Analyze prompt</button>

<div id="progressBar"><div id="progressFill"></div></div>
<div id="error"></div>
<div id="analysis"></div>
<video id="player" controls style="display:none"></video>
<a id="download" style="display:none">Download video</a>

<script>
const el = id => document.getElementById(id);

el('saveKeyBtn').onclick = async () => {
  const resp = await fetch('/api/key', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({apiKey: el('apiKey').value})
  });
  const body = await resp.json();
  el('error').textContent = body.success ? '' : body.error;
};

el('analyzeBtn').onclick = async () => {
  el('error').textContent = '';
  el('analysis').textContent = 'Analyzing...';
  const resp = await fetch('/api/analyze', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({prompt: el('prompt').value})
  });
  const body = await resp.json();
  el('analysis').textContent = body.success ? body.analysis : '';
  if (!body.success) el('error').textContent = body.error;
};

el('generateBtn').onclick = async () => {
  el('error').textContent = '';
  el('player').style.display = 'none';
  el('generateBtn').disabled = true;

  const form = new FormData();
  form.append('prompt', el('prompt').value);
  form.append('aspectRatio', el('aspectRatio').value);
  form.append('resolution', el('resolution').value);
  form.append('durationSeconds', el('durationSeconds').value);
  if (el('image').files[0]) form.append('image', el('image').files[0]);

  const resp = await fetch('/api/generate', {method: 'POST', body: form});
  const body = await resp.json();
  if (!body.success) {
    el('error').textContent = body.error;
    el('generateBtn').disabled = false;
    return;
  }
  watchJob(body.jobId);
};

function watchJob(jobId) {
  el('progressBar').style.display = 'block';
  const scheme = location.protocol === 'https:' ? 'wss' : 'ws';
  const sock = new WebSocket(scheme + '://' + location.host + '/ws/jobs/' + jobId);
  sock.onmessage = e => {
    const event = JSON.parse(e.data);
    el('progressFill').style.width = event.progress + '%';
    if (event.status) { sock.close(); finishJob(jobId); }
  };
  sock.onerror = () => { sock.close(); pollJob(jobId); };
}

async function pollJob(jobId) {
  const resp = await fetch('/api/jobs/' + jobId);
  const job = await resp.json();
  el('progressFill').style.width = job.progress + '%';
  if (job.status === 'succeeded' || job.status === 'failed') { renderJob(job); return; }
  setTimeout(() => pollJob(jobId), 2000);
}

async function finishJob(jobId) {
  const resp = await fetch('/api/jobs/' + jobId);
  renderJob(await resp.json());
}

function renderJob(job) {
  el('generateBtn').disabled = false;
  el('progressBar').style.display = 'none';
  if (job.status === 'failed') { el('error').textContent = job.error; return; }
  const url = 'data:' + job.video.type + ';base64,' + job.video.data;
  el('player').src = url;
  el('player').style.display = 'block';
  const link = el('download');
  link.href = url;
  link.download = job.filename;
  link.style.display = 'inline';
}
</script>
</body>
</html>
`
